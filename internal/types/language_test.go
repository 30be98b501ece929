package types

import "testing"

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"hindi", LanguageHindi},
		{"  Kannada ", LanguageKannada},
		{"hi", LanguageHindi},
		{"hi-IN", LanguageHindi},
		{"mr", LanguageMarathi},
		{"gu-IN", LanguageGujarati},
		{"pa", LanguagePunjabi},
		{"bn-BD", LanguageBengali},
		{"en-US", LanguageEnglish},
		{"fr", LanguageEnglish},
		{"klingon", LanguageEnglish},
		{"", LanguageEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLanguage(tt.in); got != tt.want {
				t.Errorf("ParseLanguage(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestLanguage_OrDefault(t *testing.T) {
	if got := Language("tamil").OrDefault(); got != LanguageEnglish {
		t.Errorf("expected english fallback, got %s", got)
	}
	if got := LanguagePunjabi.OrDefault(); got != LanguagePunjabi {
		t.Errorf("expected punjabi, got %s", got)
	}
}

func TestLanguage_Tag(t *testing.T) {
	if got := LanguageMarathi.Tag().String(); got != "mr-IN" {
		t.Errorf("expected mr-IN, got %s", got)
	}
	if got := Language("unknown").Tag().String(); got != "en-IN" {
		t.Errorf("expected en-IN, got %s", got)
	}
}

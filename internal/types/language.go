package types

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is the active language of an utterance. The set is closed; anything
// outside it is treated as English by the engine.
type Language string

const (
	LanguageHindi    Language = "hindi"
	LanguageEnglish  Language = "english"
	LanguageKannada  Language = "kannada"
	LanguagePunjabi  Language = "punjabi"
	LanguageMarathi  Language = "marathi"
	LanguageGujarati Language = "gujarati"
	LanguageBengali  Language = "bengali"
)

// Languages lists every supported language in a stable order.
var Languages = []Language{
	LanguageHindi,
	LanguageEnglish,
	LanguageKannada,
	LanguagePunjabi,
	LanguageMarathi,
	LanguageGujarati,
	LanguageBengali,
}

// byBase maps ISO 639 base languages to the enum.
var byBase = map[string]Language{
	"hi": LanguageHindi,
	"en": LanguageEnglish,
	"kn": LanguageKannada,
	"pa": LanguagePunjabi,
	"mr": LanguageMarathi,
	"gu": LanguageGujarati,
	"bn": LanguageBengali,
}

// Known reports whether l is one of the supported languages.
func (l Language) Known() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// OrDefault returns l when it is known and English otherwise.
func (l Language) OrDefault() Language {
	if l.Known() {
		return l
	}
	return LanguageEnglish
}

// Tag returns the BCP-47 tag for the language.
func (l Language) Tag() language.Tag {
	for base, lang := range byBase {
		if lang == l {
			return language.Make(base + "-IN")
		}
	}
	return language.Make("en-IN")
}

func (l Language) String() string {
	return string(l)
}

// ParseLanguage accepts a language name ("hindi") or a BCP-47 tag ("hi",
// "mr-IN"). Unrecognised input yields English.
func ParseLanguage(s string) Language {
	l, _ := LookupLanguage(s)
	return l
}

// LookupLanguage is ParseLanguage that also reports whether s was recognised.
func LookupLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LanguageEnglish, false
	}
	if l := Language(s); l.Known() {
		return l, true
	}

	tag, err := language.Parse(s)
	if err != nil {
		return LanguageEnglish, false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return LanguageEnglish, false
	}
	if l, ok := byBase[base.String()]; ok {
		return l, true
	}
	return LanguageEnglish, false
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishimitra/internal/types"
)

const smallCatalog = `
schemes:
  - id: kcc
    title: Kisan Credit Card
    category: credit
    aliases: [KCC]
    description: "  Cheap crop loans.  "
  - id: pmfby
    title: Pradhan Mantri Fasal Bima Yojana
    category: insurance
    aliases: [PMFBY, crop insurance]
`

func writeCatalog(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "schemes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.GreaterOrEqual(t, c.Len(), 7)
	assert.Empty(t, c.Path())

	for _, id := range []string{"kcc", "pm-kisan", "pmfby", "soil-health-card", "pm-kusum", "e-nam", "pmksy"} {
		s, ok := c.Lookup(id)
		if assert.True(t, ok, id) {
			assert.NotEmpty(t, s.Title, id)
			assert.NotEmpty(t, s.Description, id)
			assert.NotEmpty(t, s.URL, id)
		}
	}
}

func TestLookup(t *testing.T) {
	c := Default()
	tests := []struct {
		in   string
		want string
	}{
		{"kcc", "kcc"},
		{"KCC", "kcc"},
		{"kisan credit card", "kcc"},
		{"  Kisan   Credit Card ", "kcc"},
		{"PM-KISAN", "pm-kisan"},
		{"pm kisan", "pm-kisan"},
		{"eNAM", "e-nam"},
		{"per drop more crop", "pmksy"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, ok := c.Lookup(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, s.ID)
		})
	}

	_, ok := c.Lookup("tractor loan")
	assert.False(t, ok)
	_, ok = c.Lookup("")
	assert.False(t, ok)
}

func TestAll_ReturnsCopies(t *testing.T) {
	c := Default()
	all := c.All()
	require.NotEmpty(t, all)
	all[0].Title = "changed"
	all[0].Aliases[0] = "changed"

	again := c.All()
	assert.NotEqual(t, "changed", again[0].Title)
	assert.NotEqual(t, "changed", again[0].Aliases[0])
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), smallCatalog)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, c.Path())

	want := []types.SchemeRecord{
		{ID: "kcc", Title: "Kisan Credit Card", Category: "credit", Aliases: []string{"KCC"}, Description: "Cheap crop loans."},
		{ID: "pmfby", Title: "Pradhan Mantri Fasal Bima Yojana", Category: "insurance", Aliases: []string{"PMFBY", "crop insurance"}},
	}
	if diff := cmp.Diff(want, c.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"credit", "insurance"}, c.Categories())

	s, ok := c.Lookup("Crop Insurance")
	require.True(t, ok)
	assert.Equal(t, "pmfby", s.ID)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Len(), c.Len())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	tests := map[string]string{
		"malformed":     "schemes: [",
		"empty":         "schemes: []",
		"missing id":    "schemes:\n  - title: X\n",
		"missing title": "schemes:\n  - id: x\n",
		"duplicate id":  "schemes:\n  - {id: x, title: A}\n  - {id: X, title: B}\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, t.TempDir(), body))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestReload_KeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, smallCatalog)
	c, err := Load(path)
	require.NoError(t, err)

	writeCatalog(t, dir, "schemes: [")
	require.Error(t, c.Reload())
	assert.Equal(t, 2, c.Len())

	writeCatalog(t, dir, "schemes:\n  - {id: aif, title: Agriculture Infrastructure Fund}\n")
	require.NoError(t, c.Reload())
	assert.Equal(t, 1, c.Len())
	_, ok := c.Lookup("kcc")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	recs := []types.SchemeRecord{{ID: "x", Title: "X Scheme", Aliases: []string{"XS"}}}
	c, err := New(recs)
	require.NoError(t, err)
	recs[0].Aliases[0] = "changed"

	_, ok := c.Lookup("xs")
	assert.True(t, ok, "catalog keeps its own copy")
	assert.NoError(t, c.Reload(), "in-memory reload is a no-op")

	_, err = New(nil)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

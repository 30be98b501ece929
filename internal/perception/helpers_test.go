package perception

import (
	"context"
	"strings"
	"sync"
	"time"

	"krishimitra/internal/types"
)

// Friday.
var testNow = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

var (
	schemeKCC = types.SchemeRecord{
		ID:          "kcc",
		Title:       "Kisan Credit Card",
		Description: "Short-term credit for crop cultivation at concessional interest.",
		Category:    "credit",
		Aliases:     []string{"KCC"},
	}
	schemePMKisan = types.SchemeRecord{
		ID:          "pm-kisan",
		Title:       "Pradhan Mantri Kisan Samman Nidhi",
		Description: "Income support of 6000 rupees a year to farmer families.",
		Category:    "income support",
		Aliases:     []string{"PM-KISAN"},
	}
	schemePMFBY = types.SchemeRecord{
		ID:          "pmfby",
		Title:       "Pradhan Mantri Fasal Bima Yojana",
		Description: "Crop insurance against natural calamities.",
		Category:    "insurance",
		Aliases:     []string{"PMFBY"},
	}
	schemeSoil = types.SchemeRecord{
		ID:          "soil-health-card",
		Title:       "Soil Health Card",
		Description: "Soil testing with crop-wise nutrient recommendations.",
		Category:    "soil",
	}
)

type testCatalog struct {
	schemes []types.SchemeRecord
}

func newTestCatalog() *testCatalog {
	return &testCatalog{schemes: []types.SchemeRecord{schemeKCC, schemePMKisan, schemePMFBY, schemeSoil}}
}

func (c *testCatalog) Lookup(text string) (types.SchemeRecord, bool) {
	for _, s := range c.schemes {
		if strings.EqualFold(s.ID, text) || strings.EqualFold(s.Title, text) {
			return s, true
		}
		for _, a := range s.Aliases {
			if strings.EqualFold(a, text) {
				return s, true
			}
		}
	}
	return types.SchemeRecord{}, false
}

func (c *testCatalog) All() []types.SchemeRecord { return c.schemes }

type fakeGateway struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
}

func (g *fakeGateway) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	return g.response, g.err
}

func (g *fakeGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

type recordingObserver struct {
	mu        sync.Mutex
	decisions []types.Decision
	failures  []error
}

func (o *recordingObserver) ObserveDecision(_ types.Language, d types.Decision) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.decisions = append(o.decisions, d)
}

func (o *recordingObserver) ObserveModelFailure(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures = append(o.failures, err)
}

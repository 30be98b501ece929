package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishimitra/internal/perception"
	"krishimitra/internal/types"
)

func TestObserveDecision(t *testing.T) {
	m := MustNewMetrics(prometheus.NewRegistry())

	m.ObserveDecision(types.LanguageHindi, types.CreateTask(types.Task{Title: "x"}, types.SourceLocal))
	m.ObserveDecision(types.LanguageHindi, types.CreateTask(types.Task{Title: "y"}, types.SourceLocal))
	m.ObserveDecision(types.LanguageEnglish, types.Unhandled("no intent recognized"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.decisions.WithLabelValues("hindi", "create_task", "local")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decisions.WithLabelValues("english", "unhandled", "none")))
}

func TestObserveModelFailure(t *testing.T) {
	m := MustNewMetrics(prometheus.NewRegistry())

	m.ObserveModelFailure(fmt.Errorf("%w: bad json", perception.ErrParseFailure))
	m.ObserveModelFailure(fmt.Errorf("%w: no key", perception.ErrGatewayUnavailable))
	m.ObserveModelFailure(fmt.Errorf("%w: quota", perception.ErrGatewayUnavailable))
	m.ObserveModelFailure(errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.modelFailures.WithLabelValues("parse")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.modelFailures.WithLabelValues("unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.modelFailures.WithLabelValues("other")))
}

func TestObserveTurnAndCatalog(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MustNewMetrics(reg)

	m.ObserveTurn(20*time.Millisecond, 0)
	m.ObserveTurn(40*time.Millisecond, 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.turnFailures))

	m.SetCatalogSize(9)
	m.ObserveCatalogReload(9, errors.New("invalid"))
	m.ObserveCatalogReload(4, nil)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.catalogSchemes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.catalogReloads.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.catalogReloads.WithLabelValues("ok")))

	m.ObserveHTTP("POST", "/v1/resolve", 200, 5*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/v1/resolve", "200")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["krishi_session_turn_duration_seconds"])
	assert.True(t, names["krishi_http_request_duration_seconds"])
}

func TestMustNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	MustNewMetrics(reg)
	assert.Panics(t, func() { MustNewMetrics(reg) })
}

package logging

import (
	"time"

	"go.uber.org/zap"
)

// AuditEventType names a structured audit event.
type AuditEventType string

const (
	AuditTurnStart     AuditEventType = "turn_start"
	AuditTurnEnd       AuditEventType = "turn_end"
	AuditDecision      AuditEventType = "decision"
	AuditDecisionApply AuditEventType = "decision_apply"
	AuditModelCall     AuditEventType = "model_call"
	AuditCatalogReload AuditEventType = "catalog_reload"
)

// AuditLogger emits one structured entry per event. Unlike the category
// loggers it uses typed zap fields so entries can be filtered mechanically.
type AuditLogger struct {
	logger    *zap.Logger
	sessionID string
}

// Audit returns an audit logger without session attribution.
func Audit() *AuditLogger {
	return AuditWithSession("")
}

// AuditWithSession returns an audit logger bound to a chat session.
func AuditWithSession(sessionID string) *AuditLogger {
	mu.RLock()
	z := base
	mu.RUnlock()
	if !IsCategoryEnabled(CategoryAudit) {
		z = zap.NewNop()
	}
	return &AuditLogger{logger: z.Named(string(CategoryAudit)), sessionID: sessionID}
}

func (a *AuditLogger) log(event AuditEventType, fields ...zap.Field) {
	fields = append(fields, zap.String("event", string(event)))
	if a.sessionID != "" {
		fields = append(fields, zap.String("session", a.sessionID))
	}
	a.logger.Info("audit", fields...)
}

// TurnStart records the start of a turn.
func (a *AuditLogger) TurnStart(language string, inputLen int) {
	a.log(AuditTurnStart, zap.String("language", language), zap.Int("input_len", inputLen))
}

// TurnEnd records the end of a turn.
func (a *AuditLogger) TurnEnd(decisions int, elapsed time.Duration, failures int) {
	a.log(AuditTurnEnd, zap.Int("decisions", decisions), zap.Duration("elapsed", elapsed), zap.Int("apply_failures", failures))
}

// Decision records a decision emitted by the resolver.
func (a *AuditLogger) Decision(kind, language, detail string) {
	a.log(AuditDecision, zap.String("kind", kind), zap.String("language", language), zap.String("detail", detail))
}

// DecisionApplied records the host applying a decision.
func (a *AuditLogger) DecisionApplied(kind, target string, err error) {
	fields := []zap.Field{zap.String("kind", kind), zap.String("target", target), zap.Bool("success", err == nil)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	a.log(AuditDecisionApply, fields...)
}

// ModelCall records a model gateway round trip.
func (a *AuditLogger) ModelCall(model string, elapsed time.Duration, err error) {
	fields := []zap.Field{zap.String("model", model), zap.Duration("elapsed", elapsed), zap.Bool("success", err == nil)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	a.log(AuditModelCall, fields...)
}

// CatalogReload records a scheme catalog reload.
func (a *AuditLogger) CatalogReload(path string, schemes int, err error) {
	fields := []zap.Field{zap.String("path", path), zap.Int("schemes", schemes), zap.Bool("success", err == nil)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	a.log(AuditCatalogReload, fields...)
}

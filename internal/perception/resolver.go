// Package perception turns a farmer's utterance into typed decisions:
// create a task, complete tasks, answer a scheme query, or nothing.
//
// Resolver.Resolve is the entry point. It runs a fixed pipeline (scheme
// detection, affirmative follow-up, completion, local extraction, model
// extraction) and always returns at least one decision.
package perception

import (
	"context"
	"fmt"
	"time"

	"krishimitra/internal/logging"
	"krishimitra/internal/types"
)

// Observer receives resolver events. *metrics.Metrics implements it.
type Observer interface {
	ObserveDecision(lang types.Language, d types.Decision)
	ObserveModelFailure(err error)
}

type nopObserver struct{}

func (nopObserver) ObserveDecision(types.Language, types.Decision) {}
func (nopObserver) ObserveModelFailure(error)                      {}

// Options carries the resolver's collaborators. Zero values are usable:
// no catalog disables scheme detection, no gateway disables the model pass.
type Options struct {
	Catalog  SchemeCatalog
	Gateway  ModelGateway
	Observer Observer

	// Now is the clock used for default due dates.
	Now func() time.Time

	Duplicates       DuplicateThresholds
	HistoryWindow    int
	DefaultDueOffset time.Duration
}

// Request is one utterance plus the caller-owned context it is resolved in.
type Request struct {
	Utterance string
	Language  types.Language
	Tasks     []types.Task
	History   []types.Exchange
}

// Resolver is safe for concurrent use; it holds no mutable state.
type Resolver struct {
	opts Options
}

// NewResolver creates a resolver, filling defaults for unset options.
func NewResolver(opts Options) *Resolver {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = DefaultHistoryWindow
	}
	if opts.DefaultDueOffset <= 0 {
		opts.DefaultDueOffset = DefaultDueOffset
	}
	opts.Duplicates = opts.Duplicates.orDefault()
	return &Resolver{opts: opts}
}

// Resolve classifies the utterance. The result is never empty and holds more
// than one decision only when several tasks were reported complete.
func (r *Resolver) Resolve(ctx context.Context, req Request) []types.Decision {
	lang := req.Language.OrDefault()
	if !req.Language.Known() {
		logging.PerceptionDebug("unknown language %q, using english tables", req.Language)
	}

	decisions := r.resolve(ctx, req, lang)
	for _, d := range decisions {
		r.opts.Observer.ObserveDecision(lang, d)
		logging.PerceptionDebug("decision: %s", d)
	}
	return decisions
}

func (r *Resolver) resolve(ctx context.Context, req Request, lang types.Language) []types.Decision {
	utterance := req.Utterance

	// 1. Explicit scheme mention.
	if s, ok := detectScheme(utterance, lang, r.opts.Catalog); ok {
		return one(types.SchemeInfo(s, matchesRedirect(utterance, lang)))
	}

	// 2. "yes" or a bare "show me" to a scheme offered earlier.
	if leadingOrTrailingAffirmative(utterance, lang) || isRedirectOnly(utterance, lang) {
		if s, ok := resolvePendingScheme(req.History, r.opts.HistoryWindow, lang, r.opts.Catalog); ok {
			return one(types.SchemeInfo(s, true))
		}
	}

	// 3. Completion report.
	if activity, ok := detectCompletion(utterance, lang); ok {
		if done := r.completions(activity, lang, req.Tasks); len(done) > 0 {
			return done
		}
		return one(types.Unhandled("no matching task: " + activity))
	}

	now := r.opts.Now()

	// 4. Local extraction.
	if task := extractLocal(utterance, lang, now, r.opts.DefaultDueOffset); task != nil {
		return one(r.createOrDuplicate(*task, types.SourceLocal, req.Tasks))
	}

	// 5. Model extraction. Failures degrade to "no intent".
	if r.opts.Gateway != nil && ctx.Err() == nil && !isChatter(utterance, lang) {
		task, err := extractViaModel(ctx, utterance, lang, r.opts.Gateway, now, r.opts.DefaultDueOffset)
		switch {
		case err != nil:
			r.opts.Observer.ObserveModelFailure(err)
			logging.PerceptionWarn("model extraction failed: %v", err)
		case task != nil:
			return one(r.createOrDuplicate(*task, types.SourceModel, req.Tasks))
		}
	}

	// 6. Nothing recognised.
	return one(types.Unhandled("no intent recognized"))
}

func (r *Resolver) completions(activity string, lang types.Language, tasks []types.Task) []types.Decision {
	stop := stopwordSet(lang)
	matched := make(map[string]bool)
	var out []types.Decision
	for _, part := range splitActivities(activity, lang) {
		candidates := make([]types.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.ID != "" && !matched[t.ID] {
				candidates = append(candidates, t)
			}
		}
		if t := findCompletionMatch(part, candidates, stop); t != nil {
			matched[t.ID] = true
			out = append(out, types.CompleteTask(t.ID))
		}
	}
	return out
}

func (r *Resolver) createOrDuplicate(task types.Task, source types.ExtractionSource, existing []types.Task) types.Decision {
	if dup := findSimilar(task.Title, existing, r.opts.Duplicates); dup != nil {
		return types.Unhandled(fmt.Sprintf("duplicate: %s", dup.Title))
	}
	return types.CreateTask(task, source)
}

func one(d types.Decision) []types.Decision {
	return []types.Decision{d}
}

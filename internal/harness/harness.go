package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/pns/internal/language"
	"github.com/roach88/pns/internal/names"
	"github.com/roach88/pns/internal/store"
	"github.com/roach88/pns/internal/testutil"
)

// Harness is the scenario execution engine.
// It runs steps against one store with deterministic context ids.
type Harness struct {
	store     *store.Store
	languages *language.Registry
	contexts  store.ContextGenerator
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh store for isolation. Step failures and
// failed assertions are reported in the result; an error is returned only
// when the scenario cannot be set up.
//
// Execution flow:
// 1. Register the scenario's language tables on top of the built-ins
// 2. Create a store with the scenario horizon
// 3. Execute the steps, checking expected errors
// 4. Evaluate the assertions and snapshot the store
func Run(scenario *Scenario) (*Result, error) {
	reg := language.Default()
	for _, path := range scenario.Languages {
		tables, err := language.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load languages: %w", err)
		}
		for _, t := range tables {
			reg.Register(t)
		}
	}

	var contexts store.ContextGenerator
	if scenario.Context != "" {
		contexts = testutil.NewFixedContextGenerator(scenario.Context)
	} else {
		contexts = testutil.NewSequentialContextGenerator("ctx")
	}

	opts := []store.Option{
		store.WithLanguages(reg),
		store.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), // Suppress logs in tests
	}
	if scenario.Horizon > 0 {
		opts = append(opts, store.WithHorizon(scenario.Horizon))
	}

	h := &Harness{
		store:     store.New(opts...),
		languages: reg,
		contexts:  contexts,
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		h.execute(int64(i+1), step, result)
	}

	actx := &AssertionContext{
		Store:     h.store,
		Languages: reg,
	}
	for _, msg := range EvaluateAssertions(scenario.Assertions, actx) {
		result.AddError(msg)
	}

	result.Snapshot = h.store.Snapshot()
	return result, nil
}

// execute runs one step, traces it and checks its expected error.
func (h *Harness) execute(seq int64, step Step, result *Result) {
	event := TraceEvent{Seq: seq, Op: step.op()}

	var err error
	switch {
	case step.Statement != nil:
		s := step.Statement
		event.Subject, _ = s.Subject.Name()
		event.Context = h.context(s.Context)
		err = h.store.Statement(event.Subject, names.Name(s.Predicate), s.Object, event.Context)

	case step.Index != nil:
		s := step.Index
		event.Subject, _ = s.Subject.Name()
		event.Context = h.context(s.Context)
		err = h.store.Index(event.Subject, event.Context)

	case step.Articulate != nil:
		s := step.Articulate
		event.Lang = s.Lang
		event.Context = h.context(s.Context)
		switch {
		case s.HTML:
			err = h.store.ArticulateHTML(strings.NewReader(s.Text), s.Lang, event.Context, s.Chunk)
		case s.Chunk > 0:
			err = h.store.ArticulateTexts(s.Text, s.Lang, event.Context, s.Chunk)
		default:
			err = h.store.ArticulateText(s.Text, s.Lang, event.Context)
		}
	}

	if err != nil {
		event.Error = errorKind(err)
	}
	result.AddTrace(event)

	if event.Error != step.ExpectError {
		result.AddError(fmt.Sprintf("step %d (%s): expected error %q, got %q",
			seq, event.Op, step.ExpectError, event.Error))
	}
}

// context returns id, or the next generated context when id is empty.
func (h *Harness) context(id string) string {
	if id != "" {
		return id
	}
	return h.contexts.Generate()
}

// errorKind maps a store error to the kind scenarios expect.
func errorKind(err error) string {
	switch {
	case errors.Is(err, store.ErrEmptyName):
		return ErrorEmptyName
	case errors.Is(err, store.ErrUnknownLanguage):
		return ErrorUnknownLanguage
	}
	return err.Error()
}

package harness

import (
	"github.com/roach88/pns/internal/names"
	"github.com/roach88/pns/internal/store"
)

// Step operations recorded in the trace.
const (
	OpStatement  = "statement"
	OpIndex      = "index"
	OpArticulate = "articulate"
)

// Error kinds a step can expect.
const (
	ErrorEmptyName       = "empty_name"
	ErrorUnknownLanguage = "unknown_language"
)

// TraceEvent records one executed step.
type TraceEvent struct {
	Seq     int64      `json:"seq"`
	Op      string     `json:"op"`
	Subject names.Name `json:"subject,omitempty"`
	Lang    string     `json:"lang,omitempty"`
	Context string     `json:"context,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every step behaved as expected and every
	// assertion held.
	Pass bool `json:"pass"`

	// Trace lists the executed steps in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains step and assertion failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Snapshot is the store after the last step.
	Snapshot store.Snapshot `json:"snapshot"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an executed step to the trace.
func (r *Result) AddTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}

package tools

import "sync"

// EmittedOutput is the run-local record of one persisted work output.
type EmittedOutput struct {
	ID             string
	OutputType     string
	Title          string
	Confidence     float64
	RequiresReview bool
}

// Emitter accumulates the outputs a run persists through emit_work_output
// and derives the review signals the runtime checks at completion. Safe for
// concurrent use.
type Emitter struct {
	mu      sync.Mutex
	outputs []EmittedOutput
}

// NewEmitter creates an empty emitter for one run.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Record appends one persisted output.
func (e *Emitter) Record(o EmittedOutput) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.outputs = append(e.outputs, o)
}

// Outputs returns a copy of everything recorded so far, in emission order.
func (e *Emitter) Outputs() []EmittedOutput {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]EmittedOutput, len(e.outputs))
	copy(out, e.outputs)
	return out
}

// MinConfidence returns the lowest confidence among recorded outputs, and
// false when nothing was recorded.
func (e *Emitter) MinConfidence() (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.outputs) == 0 {
		return 0, false
	}
	min := e.outputs[0].Confidence
	for _, o := range e.outputs[1:] {
		if o.Confidence < min {
			min = o.Confidence
		}
	}
	return min, true
}

// ReviewRequested reports whether any recorded output was flagged
// requires_review.
func (e *Emitter) ReviewRequested() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, o := range e.outputs {
		if o.RequiresReview {
			return true
		}
	}
	return false
}

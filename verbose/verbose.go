// Package verbose implements the step recorder used to show the work behind
// a calculation. Computations accept a nil-able *Recorder; a nil recorder
// makes every call a no-op, so the core stays silent unless a caller opts in.
package verbose

import "strings"

// Step is a single named calculation step.
type Step struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Level   int    `json:"level"`
}

// Recorder collects calculation steps in order. It is append-only and owned
// by the caller; the core never stores one on its values.
type Recorder struct {
	steps []Step
	level int
}

// New returns an empty Recorder.
func New() *Recorder { return &Recorder{} }

// Step records one titled step. Safe to call on a nil Recorder.
func (r *Recorder) Step(title, content string) {
	if r == nil {
		return
	}
	r.steps = append(r.steps, Step{Title: title, Content: content, Level: r.level})
}

// Section runs fn with steps nested one level deeper, under a header step.
// Safe to call on a nil Recorder (fn still runs).
func (r *Recorder) Section(name string, fn func()) {
	if r == nil {
		fn()
		return
	}
	r.Step("── "+name+" ──", "")
	r.level++
	fn()
	r.level--
}

// Steps returns the recorded steps in order. Nil Recorder yields nil.
func (r *Recorder) Steps() []Step {
	if r == nil {
		return nil
	}
	return r.steps
}

// Clear discards all recorded steps.
func (r *Recorder) Clear() {
	if r == nil {
		return
	}
	r.steps = r.steps[:0]
}

// Format renders the steps as an indented text block.
func (r *Recorder) Format() string {
	if r == nil || len(r.steps) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range r.steps {
		indent := strings.Repeat("  ", s.Level)
		b.WriteString(indent + "┌─ " + s.Title + "\n")
		if s.Content != "" {
			for _, line := range strings.Split(s.Content, "\n") {
				b.WriteString(indent + "│  " + line + "\n")
			}
		}
		b.WriteString(indent + "└" + strings.Repeat("─", 40) + "\n")
	}
	return b.String()
}

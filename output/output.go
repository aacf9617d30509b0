// Package output renders calculation results for the CLI: a human-oriented
// plain-text form and a machine-readable JSON form with stable key names.
// Plain text is not a compatibility surface; the JSON keys are.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/astral-go/astral/verbose"
)

// Field is one named value of a result. Fields keep their insertion order in
// plain output; JSON output sorts by key through the encoder.
type Field struct {
	Key   string // stable JSON contract name, e.g. "julian_date"
	Label string // human label for plain output
	Value interface{}
	Unit  string
}

// Result is a calculation result assembled by a CLI command.
type Result struct {
	Title  string
	Fields []Field
	Steps  *verbose.Recorder
}

// Add appends a field and returns the result for chaining.
func (r *Result) Add(key, label string, value interface{}, unit string) *Result {
	r.Fields = append(r.Fields, Field{Key: key, Label: label, Value: value, Unit: unit})
	return r
}

// Formatter renders a Result to a string.
type Formatter interface {
	Format(r *Result) (string, error)
}

// Plain renders results for the terminal. Verbose steps are appended when
// ShowSteps is set.
type Plain struct {
	ShowSteps bool
	NoColor   bool
}

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	labelColor = color.New(color.FgWhite)
	dimColor   = color.New(color.Faint)
)

// Format renders the result as aligned label/value lines.
func (p Plain) Format(r *Result) (string, error) {
	prevNoColor := color.NoColor
	if p.NoColor {
		color.NoColor = true
		defer func() { color.NoColor = prevNoColor }()
	}

	var b strings.Builder
	if r.Title != "" {
		b.WriteString(titleColor.Sprint(r.Title) + "\n")
	}

	width := 0
	for _, f := range r.Fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}
	for _, f := range r.Fields {
		val := "—" // absent value
		if f.Value != nil {
			val = fmt.Sprintf("%v", f.Value)
		}
		if f.Unit != "" {
			val += " " + dimColor.Sprint(f.Unit)
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			labelColor.Sprintf("%-*s", width, f.Label), val))
	}

	if p.ShowSteps {
		if steps := r.Steps.Format(); steps != "" {
			b.WriteString("\n" + dimColor.Sprint(strings.Repeat("═", 50)) + "\n")
			b.WriteString(dimColor.Sprint("  Calculation steps") + "\n")
			b.WriteString(dimColor.Sprint(strings.Repeat("═", 50)) + "\n")
			b.WriteString(steps)
		}
	}
	return b.String(), nil
}

// JSON renders results as a flat object keyed by the stable contract names.
// Absent values (nil pointers passed as field values) serialize as null.
type JSON struct {
	Pretty bool
}

// Format renders the result as a JSON object. Verbose steps, when recorded,
// appear under the "steps" key.
func (j JSON) Format(r *Result) (string, error) {
	obj := make(map[string]interface{}, len(r.Fields)+1)
	for _, f := range r.Fields {
		obj[f.Key] = f.Value
	}
	if steps := r.Steps.Steps(); len(steps) > 0 {
		obj["steps"] = steps
	}

	var raw []byte
	var err error
	if j.Pretty {
		raw, err = json.MarshalIndent(obj, "", "  ")
	} else {
		raw, err = json.Marshal(obj)
	}
	if err != nil {
		return "", errors.Wrap(err, "output: encoding json")
	}
	return string(raw), nil
}

// ForMode returns the formatter for an --output mode name.
func ForMode(mode string, showSteps bool) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "plain":
		return Plain{ShowSteps: showSteps}, nil
	case "json":
		return JSON{Pretty: true}, nil
	}
	return nil, errors.Errorf("output: unknown output mode %q", mode)
}

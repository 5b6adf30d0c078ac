package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Severity classifies a result.
type Severity string

const (
	Info    Severity = "info"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// Result is one finding produced by a check against a package version.
type Result struct {
	Atom     string   `json:"atom"`
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %s: %s", r.Atom, r.Check, r.Message)
}

// Sort orders results by atom, then check, then message, so reporter output
// is deterministic regardless of scan order.
func Sort(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Atom != b.Atom {
			return a.Atom < b.Atom
		}
		if a.Check != b.Check {
			return a.Check < b.Check
		}
		return a.Message < b.Message
	})
}

// TextReporter writes one result per line.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a line-oriented reporter.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report writes all results, sorted.
func (t *TextReporter) Report(results []Result) error {
	Sort(results)
	for _, r := range results {
		if _, err := fmt.Fprintf(t.w, "%s\n", r); err != nil {
			return err
		}
	}
	return nil
}

// JSONReporter writes results as a JSON array.
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// Report writes all results, sorted, as indented JSON.
func (j *JSONReporter) Report(results []Result) error {
	Sort(results)
	if results == nil {
		results = []Result{}
	}
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// Package format renders translated label names and their confidences as
// the Portuguese text summary returned to callers.
package format

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/imagelabel/internal/label"
)

// Header starts every response body
const Header = "A imagem tem\n"

const lineTemplate = "%.2f%% de ser do tipo %s"

// AlignmentError reports a translation that split into a different number of
// items than there were labels
type AlignmentError struct {
	Names  int
	Labels int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("alignment mismatch: %d translated names for %d labels", e.Names, e.Labels)
}

// Line renders one label
func Line(name string, confidence float64) string {
	return fmt.Sprintf(lineTemplate, confidence, name)
}

// Lines pairs names[i] with labels[i] by position. Surplus items on either
// side are dropped.
func Lines(names []string, labels []label.Label) string {
	n := min(len(names), len(labels))

	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, Line(names[i], labels[i].Confidence))
	}
	return strings.Join(lines, "\n")
}

// Strict is Lines but fails when the lengths differ
func Strict(names []string, labels []label.Label) (string, error) {
	if len(names) != len(labels) {
		return "", &AlignmentError{Names: len(names), Labels: len(labels)}
	}
	return Lines(names, labels), nil
}

// Body prefixes the summary with Header
func Body(summary string) string {
	return Header + summary
}

// Package diff produces unified diffs between two renditions of a note,
// rendered for the terminal.
package diff

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified computes a unified diff between the original text and its
// reworked counterpart. The names label the two sides in the header.
func Unified(oldName, newName, oldText, newText string) string {
	edits := myers.ComputeEdits(span.URIFromPath(oldName), oldText, newText)
	return fmt.Sprint(gotextdiff.ToUnified(oldName, newName, oldText, edits))
}

// Render wraps a unified diff in a markdown diff fence and renders it with
// Glamour for terminal output. Rendering failures fall back to the plain
// fenced diff.
func Render(unified string) string {
	fenced := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return fenced
	}
	rendered, err := renderer.Render(fenced)
	if err != nil {
		return fenced
	}
	return rendered
}

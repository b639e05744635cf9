package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"

	"github.com/gerunddev/notedown/internal/logger"
	"github.com/gerunddev/notedown/internal/markdown"
)

// Preview parses a note and renders its canonical serialization for the
// terminal.
func Preview(path string, log *logger.Logger) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	doc := markdown.NewImporter(log).Import(string(content))
	out := markdown.NewExporter(log).Export(doc)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fall back to the canonical text if the renderer is unavailable.
		fmt.Print(out)
		return nil
	}
	rendered, err := renderer.Render(out)
	if err != nil {
		fmt.Print(out)
		return nil
	}
	fmt.Print(rendered)
	return nil
}

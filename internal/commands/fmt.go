// Package commands implements the CLI command handlers.
package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/notedown/internal/logger"
	"github.com/gerunddev/notedown/internal/markdown"
)

// Fmt reimports and reserializes a note. The result goes to stdout, or
// back into the file with write set.
func Fmt(path string, write bool, log *logger.Logger) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	doc := markdown.NewImporter(log).Import(string(content))
	out := markdown.NewExporter(log).Export(doc)

	if write {
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		return nil
	}
	fmt.Print(out)
	return nil
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerunddev/notedown/internal/diff"
	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/logger"
	"github.com/gerunddev/notedown/internal/markdown"
	"github.com/gerunddev/notedown/internal/styles"
)

// Check verifies the round-trip contract for a note: the file's parse must
// reserialize to a form that parses to the same tree, and a second
// serialization must be byte-stable. Deviations print a rendered diff and
// fail the command.
func Check(path string, log *logger.Logger) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	importer := markdown.NewImporter(log)
	exporter := markdown.NewExporter(log)

	doc := importer.Import(string(content))
	first := exporter.Export(doc)

	reparsed := importer.Import(first)
	second := exporter.Export(reparsed)

	name := filepath.Base(path)
	if !document.Equal(doc, reparsed) || first != second {
		unified := diff.Unified(name, name+" (round-trip)", first, second)
		if unified == "" {
			unified = diff.Unified(name, name+" (formatted)", string(content), first)
		}
		fmt.Print(diff.Render(unified))
		return fmt.Errorf("round-trip is not stable for %s", name)
	}

	if first != string(content) {
		fmt.Println(styles.WarningStyle.Render(
			fmt.Sprintf("%s: stable after formatting (run `notedown fmt -w %s`)", name, path)))
		return nil
	}
	fmt.Println(styles.SuccessStyle.Render(name + ": round-trip stable"))
	return nil
}

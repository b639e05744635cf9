package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/logger"
	"github.com/gerunddev/notedown/internal/markdown"
	"github.com/gerunddev/notedown/internal/styles"
)

// Tree parses a note and prints its block structure, one node per line,
// indented by nesting depth.
func Tree(path string, log *logger.Logger) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	doc := markdown.NewImporter(log).Import(string(content))
	var b strings.Builder
	for _, block := range doc.Blocks {
		dumpBlock(&b, block, 0)
	}
	fmt.Print(b.String())
	return nil
}

func dumpBlock(b *strings.Builder, block document.Block, depth int) {
	pad := strings.Repeat("  ", depth)
	switch v := block.(type) {
	case *document.Paragraph:
		label := styles.DimStyle.Render("paragraph")
		b.WriteString(pad + label + " " + excerpt(document.InlineText(v.Inlines)) + spacingNote(v.Spacing) + "\n")
	case *document.Heading:
		label := styles.HeadingStyle.Render(fmt.Sprintf("heading(%d)", v.Level))
		b.WriteString(pad + label + " " + excerpt(document.InlineText(v.Inlines)) + spacingNote(v.Spacing) + "\n")
	case *document.List:
		label := styles.MarkerStyle.Render("list(" + v.Kind.String() + ")")
		b.WriteString(pad + label + listSpacingNote(v.Spacing) + "\n")
		for _, item := range v.Items {
			b.WriteString(pad + "  " + styles.MarkerStyle.Render("item") + "\n")
			for _, ib := range item.Blocks {
				dumpBlock(b, ib, depth+2)
			}
		}
	}
}

func excerpt(text string) string {
	text = strings.ReplaceAll(text, "\n", "\\n")
	runes := []rune(text)
	if len(runes) > 60 {
		return string(runes[:57]) + "..."
	}
	if text == "" {
		return styles.DimStyle.Render("(empty)")
	}
	return text
}

func spacingNote(s document.Spacing) string {
	if s.IsZero() {
		return ""
	}
	return " " + styles.MetaStyle.Render(fmt.Sprintf("[before=%g after=%g indent=%g]", s.Before, s.After, s.Indent))
}

func listSpacingNote(s document.ListSpacing) string {
	if s.IsZero() {
		return ""
	}
	return " " + styles.MetaStyle.Render(fmt.Sprintf("[top=%g bottom=%g indent=%g hanging=%t]", s.Top, s.Bottom, s.Indent, s.Hanging))
}

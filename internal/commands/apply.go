package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gerunddev/notedown/internal/config"
	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/editor"
	"github.com/gerunddev/notedown/internal/engine"
	"github.com/gerunddev/notedown/internal/logger"
	"github.com/gerunddev/notedown/internal/position"
)

// Apply runs a sequence of scripted editing commands against a note and
// prints (or writes back) the result. Each script entry has the form
// name[:arg]@index or name[:arg]@start-end, with indexes counted in
// characters over the document's flattened text:
//
//	enter@12  indent@5  outdent@5  backspace@7  delete@7
//	list:bullet@0-24  bold@3-10  italic@3-10
func Apply(path string, script []string, write bool, cfg *config.Config, log *logger.Logger) error {
	if len(script) == 0 {
		return fmt.Errorf("no commands given")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	ed := editor.New(cfg, log)
	defer ed.Close()
	ed.Load(string(content))

	for _, entry := range script {
		cmd, sel, err := parseScriptEntry(ed, entry)
		if err != nil {
			return fmt.Errorf("bad command %q: %w", entry, err)
		}
		ed.SetSelection(sel)
		res := ed.Apply(cmd)
		if !res.Handled {
			fmt.Fprintf(os.Stderr, "not handled: %s\n", entry)
		}
	}

	out := ed.Save()
	if write {
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		return nil
	}
	fmt.Print(out)
	return nil
}

func parseScriptEntry(ed *editor.Editor, entry string) (engine.Command, position.Range, error) {
	name, at, ok := strings.Cut(entry, "@")
	if !ok {
		return engine.Command{}, position.Range{}, fmt.Errorf("missing @position")
	}

	sel, err := parseScriptRange(ed, at)
	if err != nil {
		return engine.Command{}, position.Range{}, err
	}

	name, arg, _ := strings.Cut(name, ":")
	switch name {
	case "enter":
		return engine.Command{Kind: engine.Enter}, sel, nil
	case "indent":
		return engine.Command{Kind: engine.Indent}, sel, nil
	case "outdent":
		return engine.Command{Kind: engine.Outdent}, sel, nil
	case "backspace":
		return engine.Command{Kind: engine.Backspace}, sel, nil
	case "delete":
		return engine.Command{Kind: engine.Delete}, sel, nil
	case "list":
		kind, ok := document.ParseMarkerKind(arg)
		if !ok {
			return engine.Command{}, position.Range{}, fmt.Errorf("unknown marker kind %q", arg)
		}
		return engine.Command{Kind: engine.ToggleList, Marker: kind}, sel, nil
	case "bold":
		return engine.Command{Kind: engine.ToggleEmphasis, Emphasis: engine.EmphasisBold}, sel, nil
	case "italic":
		return engine.Command{Kind: engine.ToggleEmphasis, Emphasis: engine.EmphasisItalic}, sel, nil
	}
	return engine.Command{}, position.Range{}, fmt.Errorf("unknown command %q", name)
}

func parseScriptRange(ed *editor.Editor, at string) (position.Range, error) {
	from, to, isRange := strings.Cut(at, "-")
	start, err := strconv.Atoi(from)
	if err != nil {
		return position.Range{}, fmt.Errorf("bad index %q", from)
	}
	if !isRange {
		return position.Caret(ed.PositionAt(start)), nil
	}
	end, err := strconv.Atoi(to)
	if err != nil {
		return position.Range{}, fmt.Errorf("bad index %q", to)
	}
	return position.Range{Start: ed.PositionAt(start), End: ed.PositionAt(end)}, nil
}

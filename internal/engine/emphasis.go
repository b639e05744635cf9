package engine

import (
	"github.com/gerunddev/notedown/internal/document"
	"github.com/gerunddev/notedown/internal/position"
)

// toggleEmphasis wraps or unwraps an inline style over the selected text of
// a single paragraph: when the whole range already carries the style it is
// removed, otherwise it is applied. Selections spanning blocks are not
// handled.
func (e *Engine) toggleEmphasis(doc *document.Document, style Emphasis, sel position.Range) Result {
	startPara, ok := position.ParagraphAt(doc, sel.Start)
	if !ok {
		return Result{Handled: false, Selection: sel}
	}
	endPara, ok := position.ParagraphAt(doc, sel.End)
	if !ok || startPara != endPara {
		return Result{Handled: false, Selection: sel}
	}

	from, to := sel.Start.Offset, sel.End.Offset
	if from > to {
		from, to = to, from
	}
	n := document.InlineLen(startPara.Inlines)
	if to > n {
		to = n
	}
	if from < 0 {
		from = 0
	}
	if from == to {
		return Result{Handled: false, Selection: sel}
	}

	runs := flattenRuns(startPara.Inlines)
	runs = splitRuns(runs, from)
	runs = splitRuns(runs, to)

	apply := !rangeStyled(runs, from, to, style)
	at := 0
	for i := range runs {
		end := at + len([]rune(runs[i].text))
		if at >= from && end <= to {
			runs[i].setStyle(style, apply)
		}
		at = end
	}

	startPara.Inlines = rebuildRuns(runs)
	return Result{Handled: true, Selection: position.Range{
		Start: position.At(doc, startPara, from),
		End:   position.At(doc, startPara, to),
	}}
}

// styleRun is one maximal stretch of uniformly styled text.
type styleRun struct {
	text   string
	bold   bool
	italic bool
	url    string
}

func (r *styleRun) setStyle(style Emphasis, on bool) {
	if style == EmphasisBold {
		r.bold = on
	} else {
		r.italic = on
	}
}

func (r styleRun) hasStyle(style Emphasis) bool {
	if style == EmphasisBold {
		return r.bold
	}
	return r.italic
}

func flattenRuns(inlines []document.Inline) []styleRun {
	var out []styleRun
	var walk func(ins []document.Inline, bold, italic bool, url string)
	walk = func(ins []document.Inline, bold, italic bool, url string) {
		for _, in := range ins {
			switch v := in.(type) {
			case *document.Text:
				if v.Content != "" {
					out = append(out, styleRun{text: v.Content, bold: bold, italic: italic, url: url})
				}
			case *document.Bold:
				walk(v.Children, true, italic, url)
			case *document.Italic:
				walk(v.Children, bold, true, url)
			case *document.Link:
				walk(v.Children, bold, italic, v.URL)
			}
		}
	}
	walk(inlines, false, false, "")
	return out
}

// splitRuns cuts the run sequence at a rune offset so a style boundary can
// fall there.
func splitRuns(runs []styleRun, offset int) []styleRun {
	at := 0
	for i, r := range runs {
		n := len([]rune(r.text))
		if offset > at && offset < at+n {
			head, tail := r, r
			runes := []rune(r.text)
			head.text = string(runes[:offset-at])
			tail.text = string(runes[offset-at:])
			out := append([]styleRun{}, runs[:i]...)
			out = append(out, head, tail)
			return append(out, runs[i+1:]...)
		}
		at += n
	}
	return runs
}

func rangeStyled(runs []styleRun, from, to int, style Emphasis) bool {
	at := 0
	for _, r := range runs {
		end := at + len([]rune(r.text))
		if at >= from && end <= to && end > at {
			if !r.hasStyle(style) {
				return false
			}
		}
		at = end
	}
	return true
}

// rebuildRuns folds styled runs back into nested inline spans, outermost
// bold, then italic, then links.
func rebuildRuns(runs []styleRun) []document.Inline {
	var out []document.Inline
	i := 0
	for i < len(runs) {
		if runs[i].bold {
			j := i
			for j < len(runs) && runs[j].bold {
				j++
			}
			out = append(out, &document.Bold{Children: rebuildItalic(runs[i:j])})
			i = j
			continue
		}
		j := i
		for j < len(runs) && !runs[j].bold {
			j++
		}
		out = append(out, rebuildItalic(runs[i:j])...)
		i = j
	}
	return out
}

func rebuildItalic(runs []styleRun) []document.Inline {
	var out []document.Inline
	i := 0
	for i < len(runs) {
		if runs[i].italic {
			j := i
			for j < len(runs) && runs[j].italic {
				j++
			}
			out = append(out, &document.Italic{Children: rebuildLinks(runs[i:j])})
			i = j
			continue
		}
		j := i
		for j < len(runs) && !runs[j].italic {
			j++
		}
		out = append(out, rebuildLinks(runs[i:j])...)
		i = j
	}
	return out
}

func rebuildLinks(runs []styleRun) []document.Inline {
	var out []document.Inline
	i := 0
	for i < len(runs) {
		if runs[i].url != "" {
			j := i
			for j < len(runs) && runs[j].url == runs[i].url {
				j++
			}
			var children []document.Inline
			for _, r := range runs[i:j] {
				children = append(children, &document.Text{Content: r.text})
			}
			out = append(out, &document.Link{URL: runs[i].url, Children: children})
			i = j
			continue
		}
		text := runs[i].text
		j := i + 1
		for j < len(runs) && runs[j].url == "" {
			text += runs[j].text
			j++
		}
		out = append(out, &document.Text{Content: text})
		i = j
	}
	return out
}

package markdown

import (
	"testing"

	"github.com/gerunddev/notedown/internal/document"
)

func TestParseInlines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // re-rendered form; parse must be renderInlines' inverse
	}{
		{"plain", "just text", "just text"},
		{"bold", "a **b** c", "a **b** c"},
		{"italic", "a *b* c", "a *b* c"},
		{"bold italic", "a ***b*** c", "a ***b*** c"},
		{"link", "see [docs](https://x.test) now", "see [docs](https://x.test) now"},
		{"autolink", "go to https://x.test/page here", "go to https://x.test/page here"},
		{"unmatched bold stays literal", "a ** b", "a ** b"},
		{"unmatched italic stays literal", "a * b", "a * b"},
		{"unmatched bracket stays literal", "a [b c", "a [b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderInlines(parseInlines(tt.in)); got != tt.want {
				t.Errorf("render(parse(%q)) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInlinesStructure(t *testing.T) {
	t.Run("bold italic nests bold over italic", func(t *testing.T) {
		out := parseInlines("***x***")
		if len(out) != 1 {
			t.Fatalf("got %d spans", len(out))
		}
		b, ok := out[0].(*document.Bold)
		if !ok || len(b.Children) != 1 {
			t.Fatalf("outer span = %#v", out[0])
		}
		if _, ok := b.Children[0].(*document.Italic); !ok {
			t.Errorf("inner span = %#v, want italic", b.Children[0])
		}
	})

	t.Run("autolink child text equals url", func(t *testing.T) {
		out := parseInlines("https://x.test")
		l, ok := out[0].(*document.Link)
		if !ok {
			t.Fatalf("span = %#v", out[0])
		}
		if l.URL != "https://x.test" || document.InlineText(l.Children) != l.URL {
			t.Errorf("autolink = %+v", l)
		}
	})
}

func TestRenderInlines(t *testing.T) {
	t.Run("autolink renders bare", func(t *testing.T) {
		in := []document.Inline{&document.Link{
			URL:      "https://x.test",
			Children: []document.Inline{&document.Text{Content: "https://x.test"}},
		}}
		if got := renderInlines(in); got != "https://x.test" {
			t.Errorf("renderInlines = %q", got)
		}
	})

	t.Run("titled link renders brackets", func(t *testing.T) {
		in := []document.Inline{&document.Link{
			URL:      "https://x.test",
			Children: []document.Inline{&document.Text{Content: "docs"}},
		}}
		if got := renderInlines(in); got != "[docs](https://x.test)" {
			t.Errorf("renderInlines = %q", got)
		}
	})

	t.Run("bold wrapping lone italic collapses", func(t *testing.T) {
		in := []document.Inline{&document.Bold{Children: []document.Inline{
			&document.Italic{Children: []document.Inline{&document.Text{Content: "x"}}},
		}}}
		if got := renderInlines(in); got != "***x***" {
			t.Errorf("renderInlines = %q", got)
		}
	})
}

package document

import (
	"github.com/google/uuid"
)

// MarkerKind is the rendering style of a list's bullets or numbers.
type MarkerKind int

const (
	Bullet MarkerKind = iota
	Decimal
	LowerLatin
	UpperLatin
	LowerRoman
	UpperRoman
	Circle
	Square
)

// String returns the stable name used in logs and CLI output.
func (k MarkerKind) String() string {
	switch k {
	case Bullet:
		return "bullet"
	case Decimal:
		return "decimal"
	case LowerLatin:
		return "lowerLatin"
	case UpperLatin:
		return "upperLatin"
	case LowerRoman:
		return "lowerRoman"
	case UpperRoman:
		return "upperRoman"
	case Circle:
		return "circle"
	case Square:
		return "square"
	}
	return "bullet"
}

// ParseMarkerKind maps a kind name back to its MarkerKind.
func ParseMarkerKind(s string) (MarkerKind, bool) {
	for _, k := range []MarkerKind{Bullet, Decimal, LowerLatin, UpperLatin, LowerRoman, UpperRoman, Circle, Square} {
		if k.String() == s {
			return k, true
		}
	}
	return Bullet, false
}

// MetaField is an opaque key:value pair from a metadata comment that the
// importer does not recognize. Preserved verbatim for forward compatibility.
type MetaField struct {
	Key   string
	Value string
}

// Spacing carries layout hints for a paragraph or heading that plain
// markdown cannot express. Zero values mean "default" and are not persisted.
type Spacing struct {
	Before float64
	After  float64
	Indent float64
	Extra  []MetaField
}

// IsZero reports whether no hint is set.
func (s Spacing) IsZero() bool {
	return s.Before == 0 && s.After == 0 && s.Indent == 0 && len(s.Extra) == 0
}

// ListSpacing carries layout hints for a whole list.
type ListSpacing struct {
	Top     float64
	Bottom  float64
	Indent  float64
	Hanging bool
	Extra   []MetaField
}

// IsZero reports whether no hint is set.
func (s ListSpacing) IsZero() bool {
	return s.Top == 0 && s.Bottom == 0 && s.Indent == 0 && !s.Hanging && len(s.Extra) == 0
}

// Block is a top-level structural unit: Paragraph, Heading or List.
type Block interface {
	// ID returns the node identifier. IDs are generated per node, never
	// persisted, and only used for diagnostics.
	ID() string
	block()
}

// Paragraph holds an ordered sequence of inline spans. An empty paragraph
// (no inlines, or inlines with no text) is valid and represents a blank line.
type Paragraph struct {
	id      string
	Inlines []Inline
	Spacing Spacing
}

// Heading holds a level (1-4) and inline spans.
type Heading struct {
	id      string
	Level   int
	Inlines []Inline
	Spacing Spacing
}

// List holds a marker kind and at least one item. An empty list is invalid
// and is replaced by an empty paragraph during normalization.
type List struct {
	id      string
	Kind    MarkerKind
	Items   []*ListItem
	Spacing ListSpacing
}

// ListItem is one entry of a List. It normally holds a single paragraph; a
// nested List as a later block is the sole nesting mechanism.
type ListItem struct {
	id     string
	Blocks []Block
}

func (p *Paragraph) ID() string { return p.id }
func (h *Heading) ID() string   { return h.id }
func (l *List) ID() string      { return l.id }
func (li *ListItem) ID() string { return li.id }

func (p *Paragraph) block() {}
func (h *Heading) block()   {}
func (l *List) block()      {}

// NewParagraph creates a paragraph from the given inlines.
func NewParagraph(inlines ...Inline) *Paragraph {
	return &Paragraph{id: uuid.NewString(), Inlines: inlines}
}

// NewTextParagraph creates a paragraph holding a single text span.
// An empty string produces an empty paragraph.
func NewTextParagraph(text string) *Paragraph {
	p := NewParagraph()
	if text != "" {
		p.Inlines = []Inline{&Text{Content: text}}
	}
	return p
}

// NewHeading creates a heading. Levels outside 1-4 are clamped.
func NewHeading(level int, inlines ...Inline) *Heading {
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}
	return &Heading{id: uuid.NewString(), Level: level, Inlines: inlines}
}

// NewList creates a list of the given kind.
func NewList(kind MarkerKind, items ...*ListItem) *List {
	return &List{id: uuid.NewString(), Kind: kind, Items: items}
}

// NewListItem creates a list item from the given blocks.
func NewListItem(blocks ...Block) *ListItem {
	return &ListItem{id: uuid.NewString(), Blocks: blocks}
}

// Document is the root container. It always holds at least one block; an
// otherwise empty document holds a single empty paragraph.
type Document struct {
	Blocks []Block
}

// New creates an empty document: one empty paragraph.
func New() *Document {
	return &Document{Blocks: []Block{NewParagraph()}}
}

// FirstParagraph returns the item's first paragraph, or nil if the item
// holds none.
func (li *ListItem) FirstParagraph() *Paragraph {
	for _, b := range li.Blocks {
		if p, ok := b.(*Paragraph); ok {
			return p
		}
	}
	return nil
}

// NestedList returns the item's nested list, or nil.
func (li *ListItem) NestedList() *List {
	for _, b := range li.Blocks {
		if l, ok := b.(*List); ok {
			return l
		}
	}
	return nil
}

// Index returns the position of item within the list, or -1.
func (l *List) Index(item *ListItem) int {
	for i, it := range l.Items {
		if it == item {
			return i
		}
	}
	return -1
}

// InsertItem inserts item at index i, clamped to the item range.
func (l *List) InsertItem(i int, item *ListItem) {
	if i < 0 {
		i = 0
	}
	if i > len(l.Items) {
		i = len(l.Items)
	}
	l.Items = append(l.Items, nil)
	copy(l.Items[i+1:], l.Items[i:])
	l.Items[i] = item
}

// RemoveItem removes item from the list. The list may be left empty; the
// caller is expected to normalize before returning control.
func (l *List) RemoveItem(item *ListItem) {
	i := l.Index(item)
	if i < 0 {
		return
	}
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
}

// RemoveBlock removes b from the item's block sequence.
func (li *ListItem) RemoveBlock(b Block) {
	for i, bb := range li.Blocks {
		if bb == b {
			li.Blocks = append(li.Blocks[:i], li.Blocks[i+1:]...)
			return
		}
	}
}

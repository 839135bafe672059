package vals

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ListReprBuilder helps to build Repr of list-like Values.
type ListReprBuilder struct {
	indent int
	n      int
	buf    strings.Builder
}

// NewListReprBuilder makes a new ListReprBuilder.
func NewListReprBuilder(indent int) *ListReprBuilder {
	return &ListReprBuilder{indent: indent}
}

// WriteElem writes a new element.
func (b *ListReprBuilder) WriteElem(v string) {
	if b.n == 0 {
		b.buf.WriteByte('[')
	} else {
		b.buf.WriteByte(',')
	}
	if b.indent >= 0 {
		// Pretty-printing: Add a newline and indent the list values.
		b.buf.WriteByte('\n')
		b.buf.WriteString(strings.Repeat(" ", 2*(b.indent+1)))
	} else if b.n > 0 {
		b.buf.WriteByte(' ')
	}
	b.buf.WriteString(v)
	b.n++
}

// String returns the representation that has been built. After it is called,
// the ListReprBuilder may no longer be used.
func (b *ListReprBuilder) String() string {
	if b.n == 0 {
		return "[]"
	}
	if b.indent >= 0 {
		b.buf.WriteByte('\n')
		b.buf.WriteString(strings.Repeat(" ", 2*b.indent))
	}
	b.buf.WriteByte(']')
	return b.buf.String()
}

// MapReprBuilder helps building the Repr of a Map. Host objects with
// map-like content can use it to implement Reprer.
//
// When pretty-printing, values are aligned in a column after the widest key,
// measured in terminal cells so that wide characters line up.
type MapReprBuilder struct {
	indent int
	keys   []string
	values []string
}

// NewMapReprBuilder makes a new MapReprBuilder.
func NewMapReprBuilder(indent int) *MapReprBuilder {
	return &MapReprBuilder{indent: indent}
}

// WritePair writes a new key-value pair. Both k and v must already be
// representations.
func (b *MapReprBuilder) WritePair(k, v string) {
	b.keys = append(b.keys, k)
	b.values = append(b.values, v)
}

// String returns the representation that has been built.
func (b *MapReprBuilder) String() string {
	if len(b.keys) == 0 {
		return "{}"
	}
	maxKeyWidth := 0
	if b.indent >= 0 {
		for _, k := range b.keys {
			maxKeyWidth = max(maxKeyWidth, runewidth.StringWidth(k))
		}
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range b.keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		if b.indent >= 0 {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(" ", 2*(b.indent+1)))
		} else if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		if b.indent >= 0 {
			sb.WriteString(strings.Repeat(" ", maxKeyWidth-runewidth.StringWidth(k)))
		}
		sb.WriteString(b.values[i])
	}
	if b.indent >= 0 {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", 2*b.indent))
	}
	sb.WriteByte('}')
	return sb.String()
}

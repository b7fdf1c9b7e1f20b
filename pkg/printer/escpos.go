package printer

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// ESC/POS control bytes.
const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Align is an ESC a argument.
type Align byte

const (
	AlignLeft   Align = 0
	AlignCenter Align = 1
	AlignRight  Align = 2
)

// Size is a GS ! argument.
type Size byte

const (
	SizeNormal Size = 0x00
	SizeDouble Size = 0x11
)

// Receipt widths in characters for common paper rolls.
const (
	Width58mm = 32
	Width80mm = 48
)

// Document accumulates an ESC/POS stream and the plain-text preview of the same lines.
type Document struct {
	raw     bytes.Buffer
	preview strings.Builder
	width   int
}

// NewDocument starts a document for a roll charWidth characters wide.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = Width58mm
	}
	d := &Document{width: charWidth}
	d.raw.Write([]byte{esc, '@'})
	return d
}

// Width is the number of characters per line.
func (d *Document) Width() int { return d.width }

func (d *Document) Align(a Align) *Document {
	d.raw.Write([]byte{esc, 'a', byte(a)})
	return d
}

func (d *Document) Bold(on bool) *Document {
	var b byte
	if on {
		b = 1
	}
	d.raw.Write([]byte{esc, 'E', b})
	return d
}

func (d *Document) Size(s Size) *Document {
	d.raw.Write([]byte{gs, '!', byte(s)})
	return d
}

// Line writes s and a line feed.
func (d *Document) Line(s string) *Document {
	d.raw.WriteString(s)
	d.raw.WriteByte(lf)
	d.preview.WriteString(s)
	d.preview.WriteByte('\n')
	return d
}

// Rule writes a full-width line of ch.
func (d *Document) Rule(ch rune) *Document {
	return d.Line(strings.Repeat(string(ch), d.width))
}

// Columns writes left and right on one line, padded to the full width.
// Widths are counted in runes so non-Latin names line up.
func (d *Document) Columns(left, right string) *Document {
	gap := d.width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		gap = 1
	}
	return d.Line(left + strings.Repeat(" ", gap) + right)
}

// Feed writes n empty lines.
func (d *Document) Feed(n int) *Document {
	for i := 0; i < n; i++ {
		d.Line("")
	}
	return d
}

// Cut appends a full paper cut.
func (d *Document) Cut() *Document {
	d.raw.Write([]byte{gs, 'V', 0x00})
	return d
}

// Bytes is the ESC/POS stream to send to a printer.
func (d *Document) Bytes() []byte {
	return d.raw.Bytes()
}

// Preview is the document as plain text without control codes.
func (d *Document) Preview() string {
	return d.preview.String()
}

package render

import (
	"io"
	"strings"

	"github.com/jacoelho/sdo/internal/textbuf"
)

// Indent is the text written once per depth level.
const Indent = "  "

// Sink receives rendered lines in emission order.
type Sink interface {
	Line(depth int, text string) error
}

// TextSink writes each line to W, indented by depth.
type TextSink struct {
	W io.Writer
}

// Line writes one indented line.
func (s TextSink) Line(depth int, text string) error {
	_, err := io.WriteString(s.W, strings.Repeat(Indent, depth)+text+"\n")
	return err
}

// Line is a recorded rendering line.
type Line struct {
	Text  string
	Depth int
}

// String returns the line as a TextSink would write it, without the newline.
func (l Line) String() string {
	return strings.Repeat(Indent, l.Depth) + l.Text
}

// Lines records rendered lines.
type Lines []Line

// Line appends a line.
func (l *Lines) Line(depth int, text string) error {
	*l = append(*l, Line{Depth: depth, Text: text})
	return nil
}

// Texts returns the line texts without indentation.
func (l Lines) Texts() []string {
	out := make([]string, len(l))
	for i, line := range l {
		out[i] = line.Text
	}
	return out
}

// String joins the indented lines with newlines.
func (l Lines) String() string {
	var b strings.Builder
	for _, line := range l {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// EscapingSink collects lines as XML character data, leaving CDATA sections
// in the rendered text intact. Read the result with Buffer.String.
type EscapingSink struct {
	Buffer *textbuf.Buffer
}

// Line escapes and buffers one indented line.
func (s EscapingSink) Line(depth int, text string) error {
	s.Buffer.WriteRaw(strings.Repeat(Indent, depth))
	s.Buffer.WriteText(text)
	s.Buffer.WriteRaw("\n")
	return nil
}

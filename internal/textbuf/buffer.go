package textbuf

import (
	"bytes"
	"io"
	"strings"

	"github.com/jacoelho/sdo/internal/marker"
)

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Buffer accumulates XML character data. Text is escaped on write, except
// for CDATA sections which are kept verbatim: their delimiters are replaced
// by placeholder tokens before escaping and restored when the buffer is read.
//
// Text written to a Buffer must not contain the placeholder tokens.
type Buffer struct {
	buf bytes.Buffer
}

// WriteText appends escaped character data. CDATA sections in s are kept.
func (b *Buffer) WriteText(s string) {
	protected := marker.Protect(s)
	for protected != "" {
		start := strings.Index(protected, marker.CDataStart)
		if start < 0 {
			b.buf.WriteString(escapeOutside(protected))
			return
		}
		b.buf.WriteString(escapeOutside(protected[:start]))
		rest := protected[start+len(marker.CDataStart):]
		end := strings.Index(rest, marker.CDataEnd)
		if end < 0 {
			// Unterminated section: the remainder is ordinary text.
			b.buf.WriteString(escapeOutside(protected[start:]))
			return
		}
		b.buf.WriteString(marker.CDataStart)
		b.buf.WriteString(rest[:end])
		b.buf.WriteString(marker.CDataEnd)
		protected = rest[end+len(marker.CDataEnd):]
	}
}

// escapeOutside escapes text found outside a CDATA section. Stray
// delimiters are restored first so they are escaped like any other markup.
func escapeOutside(s string) string {
	return escaper.Replace(marker.Restore(s))
}

// WriteCDATA appends s as a CDATA section.
func (b *Buffer) WriteCDATA(s string) {
	b.buf.WriteString(marker.Wrap(s))
}

// WriteRaw appends s without escaping.
func (b *Buffer) WriteRaw(s string) {
	b.buf.WriteString(s)
}

// Len returns the number of buffered bytes, placeholders included.
func (b *Buffer) Len() int {
	return b.buf.Len()
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.buf.Reset()
}

// String returns the assembled text with CDATA delimiters restored.
func (b *Buffer) String() string {
	return marker.Restore(b.buf.String())
}

// WriteTo writes the assembled text to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

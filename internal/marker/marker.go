package marker

import "strings"

// Placeholder tokens standing in for CDATA delimiters while text passes
// through an escaping writer.
const (
	CDataStart = "XXXCDATA@STARTXXX"
	CDataEnd   = "XXXCDATA@ENDX"
)

// Literal CDATA section delimiters.
const (
	XMLCDataStart = "<![CDATA["
	XMLCDataEnd   = "]]>"
)

// ReplaceAll replaces every non-overlapping occurrence of from in host with
// to, scanning left to right. When from does not occur, or is empty, host is
// returned unchanged.
func ReplaceAll(host, from, to string) string {
	if from == "" {
		return host
	}
	return strings.ReplaceAll(host, from, to)
}

// Protect replaces literal CDATA delimiters with placeholder tokens.
func Protect(text string) string {
	return ReplaceAll(ReplaceAll(text, XMLCDataStart, CDataStart), XMLCDataEnd, CDataEnd)
}

// Restore replaces placeholder tokens with literal CDATA delimiters.
// It is the inverse of Protect when text held no placeholder tokens before
// Protect ran.
func Restore(text string) string {
	return ReplaceAll(ReplaceAll(text, CDataStart, XMLCDataStart), CDataEnd, XMLCDataEnd)
}

// Wrap encloses text in a CDATA section written with placeholder tokens.
func Wrap(text string) string {
	return CDataStart + text + CDataEnd
}

// Package mask turns Java source into a position-preserving shadow of
// itself: code is replaced by whitespace, comment text is copied
// verbatim, and every line break stays where it was. The shadow has
// the same line count as the input, so tools that consume it (comment
// extraction, translation memories, linters) can report original
// line and column numbers.
//
// # Architecture
//
//	┌──────────────┐     ┌──────────────┐     ┌──────────────┐
//	│  CharReader  │────▶│   Scanner    │────▶│    Writer    │
//	│ (pull runes) │     │ (six states) │     │ (push runes) │
//	└──────────────┘     └──────────────┘     └──────────────┘
//
// The Scanner is a finite-state machine over six lexical contexts:
// plain code, line comment, block comment, string literal, text
// block, and char literal. It pulls runes from a Source (one rune of
// lookahead) and pushes the shadow to a Sink; both sides are
// interfaces so the machine can be tested with in-memory streams.
//
// # Masking rules
//
// Opening and closing comment tokens ("//", "/*", "*/", and the
// leading asterisk run of "/**") become the same number of spaces.
// Comment text is copied verbatim. On block comment continuation
// lines the conventional margin (spaces, tabs, a "*" and one space)
// is consumed without output, so those lines come out shorter.
//
// String and text block delimiters become spaces; their contents are
// masked one space per rune unless WithPreservedStrings is given, in
// which case contents are copied. An escape sequence always collapses
// to a single output rune. Char literals are masked unconditionally,
// with two output spaces for an escape.
//
// Malformed input is not an error: an unterminated string or char
// literal ends at the next line break, and any construct still open
// at end of stream simply stops. The only failure mode is an I/O
// error from the underlying reader or writer.
//
// # Example
//
//	var buf bytes.Buffer
//	err := mask.Shadow(&buf, file)
//	// buf now holds the shadow: same line count, comments intact.
package mask

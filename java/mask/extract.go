package mask

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Comment is one line of comment text recovered from a source file.
// A block comment spanning several lines yields one Comment per line.
type Comment struct {
	Line int // 1-based line number in the original source
	Text string
}

// ExtractComments returns the comment text of the Java source read
// from r, line by line. It masks the source with string contents
// masked too, so every line of the shadow that still carries text is
// comment text by construction. String literals that look like
// comments are therefore never reported.
func ExtractComments(r io.Reader) ([]Comment, error) {
	var buf bytes.Buffer
	if err := Shadow(&buf, r); err != nil {
		return nil, err
	}

	var comments []Comment
	sc := bufio.NewScanner(&buf)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		comments = append(comments, Comment{Line: line, Text: text})
	}
	return comments, sc.Err()
}

package mask

import "io"

// Source is a pull-based rune source with one rune of lookahead.
// Next returns io.EOF when the stream is exhausted. Repeated calls to
// Peek without an intervening Next return the identical rune.
type Source interface {
	Next() (rune, error)
	Peek() (rune, error)
}

// Sink is a push-based rune sink. WriteSpaces emits exactly n space
// characters and exists so fixed-width token replacements don't
// allocate intermediate strings.
type Sink interface {
	WriteRune(r rune) error
	WriteString(s string) error
	WriteSpaces(n int) error
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithPreservedStrings copies string literal and text block contents
// verbatim instead of masking them. Char literals are always masked.
func WithPreservedStrings() Option {
	return func(s *Scanner) {
		s.preserveStrings = true
	}
}

// Scanner masks Java source to whitespace while copying comment text
// verbatim and keeping every line break in place. It consumes runes
// from a Source and drives a Sink; it has no knowledge of the
// underlying storage on either side.
//
// Malformed input is never an error: every state has a fallback
// transition for every rune, and a construct left open at end of
// stream simply stops. Only Source/Sink I/O errors abort a run.
type Scanner struct {
	src Source
	out Sink

	state           State
	preserveStrings bool
}

func NewScanner(src Source, out Sink, opts ...Option) *Scanner {
	s := &Scanner{
		src:   src,
		out:   out,
		state: Normal,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shadow masks Java source read from r and writes the shadow to w.
// It is the convenience entry point wiring a CharReader and a Writer
// around a Scanner.
func Shadow(w io.Writer, r io.Reader, opts ...Option) error {
	out := NewWriter(w)
	if err := NewScanner(NewCharReader(r), out, opts...).Run(); err != nil {
		return err
	}
	return out.Flush()
}

// Run consumes the source until end of stream, writing the shadow to
// the sink. It always terminates with a nil error on well-formed and
// malformed input alike; only I/O failures are returned.
func (s *Scanner) Run() error {
	for {
		c, err := s.src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch s.state {
		case Normal:
			err = s.scanNormal(c)
		case LineComment:
			err = s.scanLineComment(c)
		case BlockComment:
			err = s.scanBlockComment(c)
		case StringLiteral:
			err = s.scanString(c)
		case TextBlockLiteral:
			err = s.scanTextBlock(c)
		case CharLiteral:
			err = s.scanCharLiteral(c)
		}
		if err != nil {
			return err
		}
	}
}

// State reports the scanner's current lexical state.
func (s *Scanner) State() State {
	return s.state
}

// peek looks one rune ahead. End of stream is not an error here: it
// reports ok=false so callers can treat "nothing follows" as an
// ordinary non-match.
func (s *Scanner) peek() (rune, bool, error) {
	r, err := s.src.Peek()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return r, true, nil
}

// discard consumes a rune the caller has already peeked at.
func (s *Scanner) discard() error {
	_, err := s.src.Next()
	if err == io.EOF {
		return nil
	}
	return err
}

func (s *Scanner) scanNormal(c rune) error {
	switch c {
	case '/':
		p, ok, err := s.peek()
		if err != nil {
			return err
		}
		switch {
		case ok && p == '/':
			if err := s.discard(); err != nil {
				return err
			}
			s.state = LineComment
			return s.out.WriteSpaces(2)
		case ok && p == '*':
			if err := s.discard(); err != nil {
				return err
			}
			if err := s.out.WriteSpaces(2); err != nil {
				return err
			}
			// Absorb the leading asterisk run of Javadoc-style openers
			// such as "/**", one space per asterisk.
			for {
				p, ok, err := s.peek()
				if err != nil {
					return err
				}
				if !ok || p != '*' {
					break
				}
				if err := s.discard(); err != nil {
					return err
				}
				if err := s.out.WriteSpaces(1); err != nil {
					return err
				}
			}
			s.state = BlockComment
			closed, err := s.skipCommentMargin()
			if err != nil {
				return err
			}
			if closed {
				s.state = Normal
			}
			return nil
		default:
			return s.out.WriteSpaces(1)
		}
	case '"':
		p, ok, err := s.peek()
		if err != nil {
			return err
		}
		if ok && p == '"' {
			if err := s.discard(); err != nil {
				return err
			}
			p, ok, err = s.peek()
			if err != nil {
				return err
			}
			if ok && p == '"' {
				if err := s.discard(); err != nil {
					return err
				}
				s.state = TextBlockLiteral
				return s.out.WriteSpaces(3)
			}
			// Two quotes and no third: an empty string literal,
			// including when the stream ends right here.
			return s.out.WriteSpaces(2)
		}
		s.state = StringLiteral
		return s.out.WriteSpaces(1)
	case '\'':
		s.state = CharLiteral
		return s.out.WriteSpaces(1)
	case '\n':
		// Newlines are structural and never masked.
		return s.out.WriteRune('\n')
	default:
		return s.out.WriteSpaces(1)
	}
}

func (s *Scanner) scanLineComment(c rune) error {
	if c == '\n' {
		s.state = Normal
	}
	return s.out.WriteRune(c)
}

func (s *Scanner) scanBlockComment(c rune) error {
	switch c {
	case '*':
		p, ok, err := s.peek()
		if err != nil {
			return err
		}
		if ok && p == '/' {
			if err := s.discard(); err != nil {
				return err
			}
			s.state = Normal
			return s.out.WriteSpaces(2)
		}
		return s.out.WriteRune('*')
	case '\n':
		if err := s.out.WriteRune('\n'); err != nil {
			return err
		}
		closed, err := s.skipCommentMargin()
		if err != nil {
			return err
		}
		if closed {
			s.state = Normal
		}
		return nil
	default:
		return s.out.WriteRune(c)
	}
}

// skipCommentMargin consumes the conventional margin of a block
// comment continuation line: spaces and tabs, then an optional "*"
// with one optional space after it. Nothing is written for the
// consumed runes, so continuation lines come out shorter than their
// input. It reports whether the margin turned out to be the closing
// "*/".
func (s *Scanner) skipCommentMargin() (bool, error) {
	for {
		p, ok, err := s.peek()
		if err != nil {
			return false, err
		}
		if !ok || (p != ' ' && p != '\t') {
			break
		}
		if err := s.discard(); err != nil {
			return false, err
		}
	}
	p, ok, err := s.peek()
	if err != nil || !ok || p != '*' {
		return false, err
	}
	if err := s.discard(); err != nil {
		return false, err
	}
	p, ok, err = s.peek()
	if err != nil {
		return false, err
	}
	if ok && p == '/' {
		if err := s.discard(); err != nil {
			return false, err
		}
		return true, nil
	}
	if ok && p == ' ' {
		if err := s.discard(); err != nil {
			return false, err
		}
	}
	return false, nil
}

func (s *Scanner) scanString(c rune) error {
	switch c {
	case '\\':
		// The backslash and its target collapse into one output rune.
		esc, err := s.src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if s.preserveStrings {
			return s.out.WriteRune(esc)
		}
		return s.out.WriteSpaces(1)
	case '"':
		s.state = Normal
		return s.out.WriteSpaces(1)
	case '\n':
		// Unterminated literal; give up at the line break.
		s.state = Normal
		return s.out.WriteRune('\n')
	default:
		return s.content(c)
	}
}

func (s *Scanner) scanTextBlock(c rune) error {
	switch c {
	case '"':
		p, ok, err := s.peek()
		if err != nil {
			return err
		}
		if ok && p == '"' {
			if err := s.discard(); err != nil {
				return err
			}
			p, ok, err = s.peek()
			if err != nil {
				return err
			}
			if ok && p == '"' {
				if err := s.discard(); err != nil {
					return err
				}
				s.state = Normal
				return s.out.WriteSpaces(3)
			}
		}
		// A quote that does not close the block is ordinary content.
		return s.content(c)
	case '\\':
		esc, err := s.src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if s.preserveStrings {
			return s.out.WriteRune(esc)
		}
		return s.out.WriteSpaces(1)
	case '\n':
		// Text blocks are multi-line; the line structure survives
		// whether or not contents are preserved.
		return s.out.WriteRune('\n')
	default:
		return s.content(c)
	}
}

func (s *Scanner) scanCharLiteral(c rune) error {
	switch c {
	case '\\':
		if err := s.out.WriteSpaces(1); err != nil {
			return err
		}
		_, err := s.src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		return s.out.WriteSpaces(1)
	case '\'':
		s.state = Normal
		return s.out.WriteSpaces(1)
	case '\n':
		s.state = Normal
		return s.out.WriteRune('\n')
	default:
		return s.out.WriteSpaces(1)
	}
}

func (s *Scanner) content(c rune) error {
	if s.preserveStrings {
		return s.out.WriteRune(c)
	}
	return s.out.WriteSpaces(1)
}

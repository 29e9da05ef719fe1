package mask

// State identifies the lexical context the scanner is currently in.
// Exactly one state is active at a time; it is the only memory the
// scanner carries between runes.
type State int

const (
	Normal State = iota
	LineComment
	BlockComment
	StringLiteral
	TextBlockLiteral
	CharLiteral
)

func (s State) String() string {
	switch s {
	case Normal:
		return "Normal"
	case LineComment:
		return "LineComment"
	case BlockComment:
		return "BlockComment"
	case StringLiteral:
		return "StringLiteral"
	case TextBlockLiteral:
		return "TextBlockLiteral"
	case CharLiteral:
		return "CharLiteral"
	}
	return "Unknown"
}

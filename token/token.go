// Package token defines the Tokenizer's output vocabulary (spec.md §4.1).
package token

// Kind tags the lexical category of a Token.
type Kind uint8

const (
	Whitespace Kind = iota
	Newline
	LineContinuation
	Text
	Escape
	StringDelimiter
	Dollar
	OpenTuple
	CloseTuple
	OpenBlock
	CloseBlock
	OpenExpression
	CloseExpression
	Comment
	Semicolon
	Asterisk
	EOF
)

func (k Kind) String() string {
	switch k {
	case Whitespace:
		return "whitespace"
	case Newline:
		return "newline"
	case LineContinuation:
		return "line-continuation"
	case Text:
		return "text"
	case Escape:
		return "escape"
	case StringDelimiter:
		return "string-delimiter"
	case Dollar:
		return "dollar"
	case OpenTuple:
		return "open-tuple"
	case CloseTuple:
		return "close-tuple"
	case OpenBlock:
		return "open-block"
	case CloseBlock:
		return "close-block"
	case OpenExpression:
		return "open-expression"
	case CloseExpression:
		return "close-expression"
	case Comment:
		return "comment"
	case Semicolon:
		return "semicolon"
	case Asterisk:
		return "asterisk"
	case EOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Token is one lexical unit, carrying its starting position (as a rune
// index plus line/column) and its post-escape literal text.
type Token struct {
	Kind    Kind
	Literal string
	Line    int
	Column  int
	Index   int // rune offset of the token's first character in the source
	Length  int // number of source runes the token consumed
}

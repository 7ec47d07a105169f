package lexer

import "fmt"

type TokenType int

const (
	// TokError is the token emitted during a lexing error.  It signals the end
	// of lexical analysis.
	TokError TokenType = iota

	TokNewline // End of the command line within multi-line input
	TokEof     // End of input

	TokWord    // A word, possibly quoted
	TokKeyword // A reserved control-flow word such as ‘if’ or ‘done’

	TokPipe       // The ‘|’ operator
	TokBackground // The ‘&’ operator

	TokWrite        // The ‘>’ operator
	TokAppend       // The ‘>>’ operator
	TokRead         // The ‘<’ operator
	TokErrWrite     // The ‘2>’ operator
	TokErrAppend    // The ‘2>>’ operator
	TokErrToOut     // The ‘2>&1’ operator
	TokOutToErr     // The ‘1>&2’ operator
	TokHeredoc      // The ‘<<’ operator
	TokHeredocStrip // The ‘<<-’ operator
	TokHereString   // The ‘<<<’ operator
)

type Token struct {
	Kind   TokenType
	Val    string
	Quoted bool // Tells an empty quoted word apart from no word at all
}

// Text returns the source spelling of an operator token type.
func (t TokenType) Text() string {
	switch t {
	case TokPipe:
		return "|"
	case TokBackground:
		return "&"
	case TokWrite:
		return ">"
	case TokAppend:
		return ">>"
	case TokRead:
		return "<"
	case TokErrWrite:
		return "2>"
	case TokErrAppend:
		return "2>>"
	case TokErrToOut:
		return "2>&1"
	case TokOutToErr:
		return "1>&2"
	case TokHeredoc:
		return "<<"
	case TokHeredocStrip:
		return "<<-"
	case TokHereString:
		return "<<<"
	}
	panic("not an operator")
}

// Maximum length of a word before truncation in diagnostics printing
const maxStrLen = 20

func (t Token) String() string {
	switch t.Kind {
	case TokError:
		return "Error: " + t.Val

	case TokNewline:
		return "newline"
	case TokEof:
		return "EOF"

	case TokWord, TokKeyword:
		if len(t.Val) > maxStrLen {
			return fmt.Sprintf("‘%.*s…’", maxStrLen, t.Val)
		}
		return "‘" + t.Val + "’"
	}

	return "‘" + t.Kind.Text() + "’"
}

package lexer

// IsMetaChar reports whether r begins an operator outside quotes.
func IsMetaChar(r rune) bool {
	return r == '|' ||
		r == '>' ||
		r == '<' ||
		r == '&'
}

// IsRedir reports whether kind is one of the redirection operators.
func IsRedir(kind TokenType) bool {
	return kind == TokWrite ||
		kind == TokAppend ||
		kind == TokRead ||
		kind == TokErrWrite ||
		kind == TokErrAppend ||
		kind == TokErrToOut ||
		kind == TokOutToErr ||
		kind == TokHeredoc ||
		kind == TokHeredocStrip ||
		kind == TokHereString
}

// IsKeyword reports whether an unquoted word is reserved for control
// flow.  The segmenter rejects these; pipeline parsing has no
// conditional grammar of its own.
func IsKeyword(s string) bool {
	switch s {
	case "if", "then", "elif", "else", "fi",
		"while", "for", "do", "done":
		return true
	}
	return false
}

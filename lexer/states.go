package lexer

import (
	"strings"
	"unicode"
)

type lexFn func(*lexer) lexFn

func lexDefault(l *lexer) lexFn {
	for {
		l.start = l.pos
		switch r := l.next(); {
		case r == eof:
			l.emit(TokEof)
			return nil
		case r == '\n':
			l.emit(TokNewline)
		case r == '|':
			l.emit(TokPipe)
		case r == '&':
			l.emit(TokBackground)
		case r == '>':
			return lexWrite
		case r == '<':
			return lexRead
		case r == '2' && l.peek() == '>':
			return lexErrWrite
		case r == '1' && strings.HasPrefix(l.input[l.pos:], ">&2"):
			l.pos += 3
			l.emit(TokOutToErr)
		case unicode.IsSpace(r):
		default:
			l.backup()
			return lexWord
		}
	}
}

func lexWrite(l *lexer) lexFn {
	switch l.peek() {
	case '>':
		l.next()
		l.emit(TokAppend)
	default:
		l.emit(TokWrite)
	}
	return lexDefault
}

func lexRead(l *lexer) lexFn {
	if l.peek() != '<' {
		l.emit(TokRead)
		return lexDefault
	}
	l.next()

	switch l.peek() {
	case '<':
		l.next()
		l.emit(TokHereString)
	case '-':
		l.next()
		l.emit(TokHeredocStrip)
	default:
		l.emit(TokHeredoc)
	}
	return lexDefault
}

func lexErrWrite(l *lexer) lexFn {
	l.next() // Consume ‘>’
	switch {
	case strings.HasPrefix(l.input[l.pos:], "&1"):
		l.pos += 2
		l.emit(TokErrToOut)
	case l.peek() == '>':
		l.next()
		l.emit(TokErrAppend)
	default:
		l.emit(TokErrWrite)
	}
	return lexDefault
}

func lexWord(l *lexer) lexFn {
	sb := strings.Builder{}
	quoted := false

	for {
		switch r := l.next(); {
		case r == '\\':
			c := l.next()
			if c == eof {
				return l.errorf("Trailing backslash")
			}
			sb.WriteRune(c)

		case r == '\'':
			i := strings.IndexByte(l.input[l.pos:], '\'')
			if i == -1 {
				return l.errorf("Unclosed single quote")
			}
			sb.WriteString(l.input[l.pos : l.pos+i])
			l.pos += i + 1
			l.width = 0
			quoted = true

		case r == '"':
			for done := false; !done; {
				switch c := l.next(); c {
				case eof:
					return l.errorf("Unclosed double quote")
				case '\\':
					e := l.next()
					if e == eof {
						return l.errorf("Trailing backslash")
					}
					sb.WriteRune(e)
				case '"':
					done = true
				default:
					sb.WriteRune(c)
				}
			}
			quoted = true

		case r == eof || unicode.IsSpace(r) || IsMetaChar(r):
			l.backup()
			return l.emitWord(sb.String(), quoted)

		default:
			sb.WriteRune(r)
		}
	}
}

func (l *lexer) emitWord(s string, quoted bool) lexFn {
	if !quoted && IsKeyword(s) {
		l.Out <- Token{Kind: TokKeyword, Val: s}
	} else {
		l.Out <- Token{Kind: TokWord, Val: s, Quoted: quoted}
	}
	l.start = l.pos
	return lexDefault
}

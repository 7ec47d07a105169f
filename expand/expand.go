// Package expand resolves shell variable and parameter references:
// ‘$name’, the special parameters, array references, and the ‘${...}’
// operator grammar.  It runs over a raw line before tokenization, so
// single-quoted regions are copied through untouched.
package expand

import (
	"os"
	"strconv"
	"strings"

	"github.com/tysh-sh/tysh/log"
)

// ShellName is the value of the ‘$0’ special parameter.
const ShellName = "tysh"

// Variables resolves every reference in line against st without
// mutating it.  The assigning operators substitute their default but do
// not persist it.
func Variables(line string, st Store) string {
	e := expander{st: st}
	return e.expand(line)
}

// VariablesMut is Variables with ‘:=’/‘=’ allowed to write through to
// the store.
func VariablesMut(line string, st Store) string {
	e := expander{st: st, mut: true}
	return e.expand(line)
}

type expander struct {
	sb  strings.Builder
	st  Store
	mut bool
}

func (e *expander) expand(line string) string {
	inSingle, inDouble := false, false

	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case inSingle:
			if c == '\'' {
				inSingle = false
			}
			e.sb.WriteByte(c)
			i++

		case c == '\'' && !inDouble:
			inSingle = true
			e.sb.WriteByte(c)
			i++

		case c == '"':
			// ‘$’ stays live inside double quotes, but an apostrophe
			// within them is literal text, not a quote.
			inDouble = !inDouble
			e.sb.WriteByte(c)
			i++

		case c == '\\' && i+1 < len(line):
			// ‘\$’ becomes a literal dollar and suppresses expansion;
			// any other escape is left for the tokenizer.
			if line[i+1] == '$' {
				e.sb.WriteByte('$')
			} else {
				e.sb.WriteByte(c)
				e.sb.WriteByte(line[i+1])
			}
			i += 2

		case c == '$':
			i += e.dollar(line[i:])

		default:
			e.sb.WriteByte(c)
			i++
		}
	}
	return e.sb.String()
}

// dollar expands one ‘$’ reference at the head of s and returns how
// many bytes it consumed.
func (e *expander) dollar(s string) int {
	if len(s) == 1 {
		e.sb.WriteByte('$')
		return 1
	}

	switch c := s[1]; {
	case c == '$':
		e.sb.WriteString(strconv.Itoa(os.Getpid()))
		return 2
	case c == '?':
		e.sb.WriteString(e.lastStatus())
		return 2
	case c == '0':
		e.sb.WriteString(ShellName)
		return 2
	case c == '#':
		// No positional parameters are supported.
		e.sb.WriteByte('0')
		return 2
	case c >= '1' && c <= '9':
		// Positional parameters are consumed and discarded.
		return 2
	case c == '{':
		return e.braced(s)
	case isIdentStart(c):
		j := 2
		for j < len(s) && isIdentChar(s[j]) {
			j++
		}
		v, _ := e.st.Get(s[1:j])
		e.sb.WriteString(v)
		return j
	default:
		// A lone ‘$’ is literal text, not an escape.
		e.sb.WriteByte('$')
		return 1
	}
}

// braced handles ‘${...}’: array references or parameter expansion.
func (e *expander) braced(s string) int {
	depth := 0
	end := -1
scan:
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i
				break scan
			}
		}
	}
	if end == -1 {
		// Unterminated ‘${’; emit the dollar literally and move on.
		e.sb.WriteByte('$')
		return 1
	}

	expr := s[2:end]
	if isArrayRef(expr) {
		e.arrayRef(expr)
		return end + 1
	}

	switch res := e.param(expr); res.kind {
	case resValue:
		e.sb.WriteString(res.value)
	case resAssign:
		if e.mut {
			if err := e.st.Set(res.name, res.value); err != nil {
				log.Warn("%s", err)
			}
		}
		e.sb.WriteString(res.value)
	case resError:
		// Reported, not fatal: the reference expands to empty text and
		// the rest of the line goes on.
		log.Warn("%s", res.msg)
	}
	return end + 1
}

func (e *expander) lastStatus() string {
	v, ok := e.st.Get("?")
	if !ok {
		return "0"
	}
	return v
}

func isIdentStart(c byte) bool {
	return c == '_' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

func isIdent(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentChar(s[i]) {
			return false
		}
	}
	return true
}

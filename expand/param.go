package expand

import (
	"strconv"
	"strings"

	"github.com/tysh-sh/tysh/pattern"
)

type resultKind int

const (
	resValue resultKind = iota
	resAssign
	resError
)

// result is the outcome of one ‘${...}’ evaluation: substituted text,
// a pending assignment, or a reported error.
type result struct {
	kind  resultKind
	value string
	name  string // assignment target for resAssign
	msg   string // diagnostic for resError
}

func value(v string) result {
	return result{kind: resValue, value: v}
}

// paramOps is the operator table for parameter expansion.  The order is
// a hard contract: operator spellings overlap (‘#’ is in three forms,
// ‘/#’ shadows ‘#’, ‘:-’ shadows ‘:’), and the first detector that
// claims an expression wins.  Reordering changes which operator a given
// expression resolves to.
var paramOps = []struct {
	name   string
	detect func(expr string) bool
	apply  func(e *expander, expr string) result
}{
	{"length", detectLength, applyLength},
	{"trim-prefix-longest", detectTrimPrefixLongest, applyTrimPrefixLongest},
	{"replace-all", detectReplaceAll, applyReplaceAll},
	{"replace-prefix", detectReplacePrefix, applyReplacePrefix},
	{"replace-suffix", detectReplaceSuffix, applyReplaceSuffix},
	{"replace-first", detectReplaceFirst, applyReplaceFirst},
	{"trim-suffix-longest", detectTrimSuffixLongest, applyTrimSuffixLongest},
	{"trim-suffix", detectTrimSuffix, applyTrimSuffix},
	{"trim-prefix", detectTrimPrefix, applyTrimPrefix},
	{"default-family", detectDefaultFamily, applyDefaultFamily},
	{"substring", detectSubstring, applySubstring},
}

// param evaluates one braced expression through the operator table,
// falling back to a plain lookup.
func (e *expander) param(expr string) result {
	for _, op := range paramOps {
		if op.detect(expr) {
			return op.apply(e, expr)
		}
	}
	v, _ := e.st.Get(expr)
	return value(v)
}

// The length form, ‘${#var}’.

func detectLength(expr string) bool {
	return len(expr) > 1 && expr[0] == '#' && isIdent(expr[1:])
}

func applyLength(e *expander, expr string) result {
	v, _ := e.st.Get(expr[1:])
	return value(strconv.Itoa(len(v)))
}

// ‘${var##pattern}’ removes the longest matching prefix.

func detectTrimPrefixLongest(expr string) bool {
	i := strings.Index(expr, "##")
	return i > 0 && isIdent(expr[:i])
}

func applyTrimPrefixLongest(e *expander, expr string) result {
	i := strings.Index(expr, "##")
	v, _ := e.st.Get(expr[:i])
	if end, ok := pattern.LongestPrefix(expr[i+2:], v); ok {
		v = v[end:]
	}
	return value(v)
}

// The ‘/’ substitution family.  Each detector requires everything left
// of the first slash to be a plain identifier; a name containing ‘#’,
// ‘%’, or ‘:’ fails that test and falls through to the later forms, so
// e.g. ‘var#x/y’ is never misread as a substitution.

func slashAt(expr string) int {
	i := strings.IndexByte(expr, '/')
	if i > 0 && isIdent(expr[:i]) {
		return i
	}
	return -1
}

func detectReplaceAll(expr string) bool {
	i := slashAt(expr)
	return i >= 0 && strings.HasPrefix(expr[i:], "//")
}

func detectReplacePrefix(expr string) bool {
	i := slashAt(expr)
	return i >= 0 && strings.HasPrefix(expr[i:], "/#")
}

func detectReplaceSuffix(expr string) bool {
	i := slashAt(expr)
	return i >= 0 && strings.HasPrefix(expr[i:], "/%")
}

func detectReplaceFirst(expr string) bool {
	return slashAt(expr) >= 0
}

// splitSubst splits ‘pat/repl’ after the operator; a missing ‘/repl’
// means deletion.
func splitSubst(rest string) (pat, repl string) {
	pat, repl, _ = strings.Cut(rest, "/")
	return pat, repl
}

func applyReplaceAll(e *expander, expr string) result {
	i := slashAt(expr)
	v, _ := e.st.Get(expr[:i])
	pat, repl := splitSubst(expr[i+2:])
	return value(pattern.ReplaceAll(v, pat, repl))
}

func applyReplacePrefix(e *expander, expr string) result {
	i := slashAt(expr)
	v, _ := e.st.Get(expr[:i])
	pat, repl := splitSubst(expr[i+2:])
	return value(pattern.ReplacePrefix(v, pat, repl))
}

func applyReplaceSuffix(e *expander, expr string) result {
	i := slashAt(expr)
	v, _ := e.st.Get(expr[:i])
	pat, repl := splitSubst(expr[i+2:])
	return value(pattern.ReplaceSuffix(v, pat, repl))
}

func applyReplaceFirst(e *expander, expr string) result {
	i := slashAt(expr)
	v, _ := e.st.Get(expr[:i])
	pat, repl := splitSubst(expr[i+1:])
	return value(pattern.ReplaceFirst(v, pat, repl))
}

// ‘${var%%pattern}’ and ‘${var%pattern}’ remove the longest and
// shortest matching suffix.

func detectTrimSuffixLongest(expr string) bool {
	i := strings.Index(expr, "%%")
	return i > 0 && isIdent(expr[:i])
}

func applyTrimSuffixLongest(e *expander, expr string) result {
	i := strings.Index(expr, "%%")
	v, _ := e.st.Get(expr[:i])
	if start, ok := pattern.LongestSuffix(expr[i+2:], v); ok {
		v = v[:start]
	}
	return value(v)
}

func detectTrimSuffix(expr string) bool {
	i := strings.IndexByte(expr, '%')
	return i > 0 && isIdent(expr[:i])
}

func applyTrimSuffix(e *expander, expr string) result {
	i := strings.IndexByte(expr, '%')
	v, _ := e.st.Get(expr[:i])
	if start, ok := pattern.ShortestSuffix(expr[i+1:], v); ok {
		v = v[:start]
	}
	return value(v)
}

// ‘${var#pattern}’ removes the shortest matching prefix.  Checked
// after the ‘/’ forms so ‘/#’ is never mistaken for it.

func detectTrimPrefix(expr string) bool {
	i := strings.IndexByte(expr, '#')
	return i > 0 && isIdent(expr[:i])
}

func applyTrimPrefix(e *expander, expr string) result {
	i := strings.IndexByte(expr, '#')
	v, _ := e.st.Get(expr[:i])
	if end, ok := pattern.ShortestPrefix(expr[i+1:], v); ok {
		v = v[end:]
	}
	return value(v)
}

// The default/assign/error/alternate family.  Colon forms trigger on
// unset-or-empty; bare forms trigger on unset only.

var defaultFamilyOps = []string{":-", ":=", ":?", ":+", "-", "=", "?", "+"}

func splitDefaultFamily(expr string) (name, op, word string, ok bool) {
	for _, o := range defaultFamilyOps {
		if i := strings.Index(expr, o); i > 0 && isIdent(expr[:i]) {
			return expr[:i], o, expr[i+len(o):], true
		}
	}
	return "", "", "", false
}

func detectDefaultFamily(expr string) bool {
	_, _, _, ok := splitDefaultFamily(expr)
	return ok
}

func applyDefaultFamily(e *expander, expr string) result {
	name, op, word, _ := splitDefaultFamily(expr)
	v, set := e.st.Get(name)

	colon := op[0] == ':'
	if colon {
		op = op[1:]
	}
	triggered := !set || colon && v == ""

	switch op {
	case "-":
		if triggered {
			return value(word)
		}
		return value(v)
	case "=":
		if triggered {
			return result{kind: resAssign, name: name, value: word}
		}
		return value(v)
	case "?":
		if triggered {
			msg := word
			if msg == "" {
				msg = "parameter null or not set"
			}
			return result{kind: resError, msg: name + ": " + msg}
		}
		return value(v)
	case "+":
		if !triggered {
			return value(word)
		}
		return value("")
	}
	panic("unreachable")
}

// ‘${var:offset}’ and ‘${var:offset:length}’ take a substring.
// Checked after the default family so ‘:-’ and friends win over a bare
// ‘:’.

func detectSubstring(expr string) bool {
	i := strings.IndexByte(expr, ':')
	return i > 0 && isIdent(expr[:i])
}

func applySubstring(e *expander, expr string) result {
	i := strings.IndexByte(expr, ':')
	v, _ := e.st.Get(expr[:i])
	offStr, lenStr, hasLen := strings.Cut(expr[i+1:], ":")

	// ‘${var: -3}’ spells a negative offset without colliding with the
	// ‘:-’ operator.
	off, err := strconv.Atoi(strings.TrimSpace(offStr))
	if err != nil {
		return value("")
	}
	if off < 0 {
		// Negative offsets count back from the end, clamped to 0.
		off += len(v)
		if off < 0 {
			off = 0
		}
	}
	if off > len(v) {
		off = len(v)
	}

	end := len(v)
	if hasLen {
		n, err := strconv.Atoi(strings.TrimSpace(lenStr))
		if err != nil {
			return value("")
		}
		if n < 0 {
			// Negative lengths stop that many characters short of the
			// end, clamped to the offset.
			end = len(v) + n
		} else {
			end = off + n
		}
		if end > len(v) {
			end = len(v)
		}
		if end < off {
			end = off
		}
	}
	return value(v[off:end])
}

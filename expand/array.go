package expand

import (
	"strconv"
	"strings"
)

// isArrayRef reports whether a braced expression is ‘name[...]’.
func isArrayRef(expr string) bool {
	open := strings.IndexByte(expr, '[')
	return open > 0 &&
		strings.HasSuffix(expr, "]") &&
		isIdent(expr[:open])
}

// arrayRef expands ‘${name[N]}’, ‘${name[@]}’, and ‘${name[*]}’.  The
// ‘@’ and ‘*’ forms both join every element with a single space; no
// word-splitting distinction is made.  Out-of-bounds and malformed
// indices expand to nothing.
func (e *expander) arrayRef(expr string) {
	open := strings.IndexByte(expr, '[')
	name := expr[:open]
	index := expr[open+1 : len(expr)-1]

	switch index {
	case "@", "*":
		xs, _ := e.st.GetArray(name)
		e.sb.WriteString(strings.Join(xs, " "))
	default:
		n, err := strconv.Atoi(index)
		if err != nil {
			return
		}
		if v, ok := e.st.ArrayGet(name, n); ok {
			e.sb.WriteString(v)
		}
	}
}

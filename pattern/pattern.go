// Package pattern implements the glob subset used by parameter
// expansion: ‘*’ matches any run of characters (including none) and ‘?’
// matches exactly one.  There are no character classes and no escaping
// inside a pattern.
package pattern

import "strings"

// Match reports whether text matches pattern in full.  Only a single
// backtrack anchor is kept, always the most recent unmatched star, which
// keeps the scan linear-amortized rather than exponential.
func Match(pattern, text string) bool {
	p, t := 0, 0
	star, mark := -1, 0

	for t < len(text) {
		switch {
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == text[t]):
			p++
			t++
		case p < len(pattern) && pattern[p] == '*':
			star, mark = p, t
			p++
		case star >= 0:
			// Retry one character further into the text, resuming the
			// pattern just after the saved star.
			mark++
			p, t = star+1, mark
		default:
			return false
		}
	}

	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}

// ShortestPrefix returns the end of the shortest prefix of s that
// matches pattern.  Split points are tried in ascending order so the
// first hit is the shortest.
func ShortestPrefix(pattern, s string) (end int, ok bool) {
	for i := 0; i <= len(s); i++ {
		if Match(pattern, s[:i]) {
			return i, true
		}
	}
	return 0, false
}

// LongestPrefix returns the end of the longest prefix of s that matches
// pattern.
func LongestPrefix(pattern, s string) (end int, ok bool) {
	for i := len(s); i >= 0; i-- {
		if Match(pattern, s[:i]) {
			return i, true
		}
	}
	return 0, false
}

// ShortestSuffix returns the start of the shortest suffix of s that
// matches pattern.
func ShortestSuffix(pattern, s string) (start int, ok bool) {
	for i := len(s); i >= 0; i-- {
		if Match(pattern, s[i:]) {
			return i, true
		}
	}
	return 0, false
}

// LongestSuffix returns the start of the longest suffix of s that
// matches pattern.
func LongestSuffix(pattern, s string) (start int, ok bool) {
	for i := 0; i <= len(s); i++ {
		if Match(pattern, s[i:]) {
			return i, true
		}
	}
	return 0, false
}

// findMatch locates the leftmost match window at or after from,
// preferring the longest match at that position.
func findMatch(pattern, s string, from int) (start, end int, ok bool) {
	for i := from; i <= len(s); i++ {
		for j := len(s); j >= i; j-- {
			if Match(pattern, s[i:j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// ReplaceFirst splices repl over the first match of pattern in s.
func ReplaceFirst(s, pattern, repl string) string {
	start, end, ok := findMatch(pattern, s, 0)
	if !ok {
		return s
	}
	return s[:start] + repl + s[end:]
}

// ReplaceAll splices repl over every match of pattern in s, scanning
// left to right with no overlap: after a replacement ending at end the
// next search resumes at end, not one past the previous start.
func ReplaceAll(s, pattern, repl string) string {
	if s == "" {
		if Match(pattern, "") {
			return repl
		}
		return s
	}

	sb := strings.Builder{}
	from := 0
	for from < len(s) {
		start, end, ok := findMatch(pattern, s, from)
		if !ok {
			break
		}
		sb.WriteString(s[from:start])
		sb.WriteString(repl)
		if end == start {
			// A zero-width match must still advance the scan.
			if end < len(s) {
				sb.WriteByte(s[end])
			}
			end++
		}
		from = end
	}
	if from < len(s) {
		sb.WriteString(s[from:])
	}
	return sb.String()
}

// ReplacePrefix splices repl over the longest prefix of s matching
// pattern, or returns s untouched when no prefix matches.
func ReplacePrefix(s, pattern, repl string) string {
	end, ok := LongestPrefix(pattern, s)
	if !ok {
		return s
	}
	return repl + s[end:]
}

// ReplaceSuffix splices repl over the longest suffix of s matching
// pattern, or returns s untouched when no suffix matches.
func ReplaceSuffix(s, pattern, repl string) string {
	start, ok := LongestSuffix(pattern, s)
	if !ok {
		return s
	}
	return s[:start] + repl
}

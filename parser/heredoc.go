package parser

import (
	"fmt"
	"strings"

	"github.com/tysh-sh/tysh/lexer"
)

// PendingHeredoc tracks a heredoc operator whose body has not been
// collected from the input yet.
type PendingHeredoc struct {
	Delimiter string
	StripTabs bool
}

func (h PendingHeredoc) matches(line string) bool {
	if h.StripTabs {
		line = strings.TrimLeft(line, "\t")
	}
	return line == h.Delimiter
}

// PendingHeredocs returns the heredocs opened on a single command line,
// in operator order.  A line that does not tokenize has no pending
// heredocs; the parse error surfaces later.
func PendingHeredocs(line string) []PendingHeredoc {
	toks, err := lexer.Tokenize(line)
	if err != nil {
		return nil
	}

	var pending []PendingHeredoc
	for i, t := range toks {
		if t.Kind != lexer.TokHeredoc && t.Kind != lexer.TokHeredocStrip {
			continue
		}
		if i+1 >= len(toks) || toks[i+1].Kind != lexer.TokWord {
			continue
		}
		pending = append(pending, PendingHeredoc{
			Delimiter: toks[i+1].Val,
			StripTabs: t.Kind == lexer.TokHeredocStrip,
		})
	}
	return pending
}

// IsHeredocComplete lets a line-buffering caller decide whether input
// needs more lines.  The first line is tokenized to find the pending
// delimiters; the lines after it are scanned, retiring each pending
// delimiter in order as a matching line is found.
func IsHeredocComplete(input string) bool {
	line, rest, multiline := strings.Cut(input, "\n")

	pending := PendingHeredocs(line)
	if len(pending) == 0 {
		return true
	}
	if !multiline {
		return false
	}

	for _, ln := range strings.Split(rest, "\n") {
		if pending[0].matches(ln) {
			pending = pending[1:]
			if len(pending) == 0 {
				return true
			}
		}
	}
	return false
}

// CollectHeredocContent accumulates one body per pending heredoc from
// lines, consuming them left to right.  Body lines keep their trailing
// newline; for ‘<<-’ every leading tab is stripped from body and
// delimiter lines alike.
func CollectHeredocContent(lines []string, pending []PendingHeredoc) ([]string, error) {
	bodies := make([]string, 0, len(pending))
	i := 0

	for _, h := range pending {
		sb := strings.Builder{}
		found := false
		for ; i < len(lines); i++ {
			ln := lines[i]
			if h.StripTabs {
				ln = strings.TrimLeft(ln, "\t")
			}
			if ln == h.Delimiter {
				i++
				found = true
				break
			}
			sb.WriteString(ln)
			sb.WriteByte('\n')
		}
		if !found {
			return nil, fmt.Errorf("Heredoc delimiter ‘%s’ not found", h.Delimiter)
		}
		bodies = append(bodies, sb.String())
	}
	return bodies, nil
}

// collectHeredocs fills in the Content of every heredoc redirection
// from the body lines following the command line.
func (p *Pipeline) collectHeredocs(lines []string) error {
	var pending []PendingHeredoc
	var slots []*Redirection

	for si := range p.Segments {
		for ri := range p.Segments[si].Redirs {
			r := &p.Segments[si].Redirs[ri]
			if r.Type != RedirHeredoc && r.Type != RedirHeredocStrip {
				continue
			}
			pending = append(pending, PendingHeredoc{
				Delimiter: r.Path,
				StripTabs: r.Type == RedirHeredocStrip,
			})
			slots = append(slots, r)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	bodies, err := CollectHeredocContent(lines, pending)
	if err != nil {
		return err
	}
	for i, body := range bodies {
		slots[i].Content = body
	}
	return nil
}

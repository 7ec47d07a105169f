package parser

import (
	"errors"

	"github.com/tysh-sh/tysh/lexer"
)

// parsePipeline walks the token stream once, accumulating words into
// the current segment and closing segments at pipes.  Operator tokens
// are re-serialized into their source spelling inside the argument list
// so that redirection extraction can recover them uniformly, whether it
// runs on a fresh parse or on a caller-supplied argument vector.
func (p *parser) parsePipeline(raw string) (*Pipeline, error) {
	pipe := &Pipeline{RawLine: raw}
	var args []string
	var quoted []bool

	for {
		switch t := p.next(); {
		case t.Kind == lexer.TokError:
			return nil, errors.New(t.Val)

		case t.Kind == lexer.TokWord:
			// A quoted word never turns back into an operator, so the
			// flag travels alongside the flattened argument.
			args = append(args, t.Val)
			quoted = append(quoted, t.Quoted)

		case t.Kind == lexer.TokKeyword:
			return nil, errExpected{"command word", t}

		case lexer.IsRedir(t.Kind):
			args = append(args, t.Kind.Text())
			quoted = append(quoted, false)

		case t.Kind == lexer.TokPipe:
			if len(args) == 0 {
				return nil, ErrEmptyBeforePipe
			}
			if err := pipe.appendSegment(args, quoted); err != nil {
				return nil, err
			}
			args, quoted = nil, nil

		case t.Kind == lexer.TokBackground:
			if k := p.peek().Kind; k != lexer.TokEof && k != lexer.TokNewline {
				return nil, ErrBackgroundPos
			}
			pipe.Background = true

		case t.Kind == lexer.TokNewline || t.Kind == lexer.TokEof:
			if len(args) == 0 {
				if len(pipe.Segments) == 0 {
					return nil, ErrEmptyCommand
				}
				return nil, ErrEmptyAfterPipe
			}
			if err := pipe.appendSegment(args, quoted); err != nil {
				return nil, err
			}
			return pipe, nil
		}
	}
}

func (p *Pipeline) appendSegment(args []string, quoted []bool) error {
	clean, redirs, err := extractRedirections(args, quoted)
	if err != nil {
		return err
	}
	if len(clean) == 0 {
		// Nothing but redirections; there is no program to run.
		return ErrEmptyCommand
	}

	p.Segments = append(p.Segments, Segment{
		Program: clean[0],
		Args:    clean[1:],
		Index:   len(p.Segments),
		Redirs:  redirs,
	})
	return nil
}

var redirTypes = map[string]RedirType{
	">":    RedirOutput,
	">>":   RedirAppend,
	"<":    RedirInput,
	"2>":   RedirErr,
	"2>>":  RedirErrAppend,
	"2>&1": RedirErrToOut,
	"1>&2": RedirOutToErr,
	"<<":   RedirHeredoc,
	"<<-":  RedirHeredocStrip,
	"<<<":  RedirHereString,
}

// ExtractRedirections scans a flat argument list for redirection
// operators and pulls each one out together with its following
// argument, leaving a clean argument list with no operators.  The
// fd-duplication operators (‘2>&1’, ‘1>&2’) take no argument.
//
// With only the strings to go on, a word that spells an operator is an
// operator: callers with quoting information go through the parser,
// which keeps a quoted ‘>’ out of the operator scan.
func ExtractRedirections(args []string) ([]string, []Redirection, error) {
	return extractRedirections(args, nil)
}

func extractRedirections(args []string, quoted []bool) ([]string, []Redirection, error) {
	clean := make([]string, 0, len(args))
	var redirs []Redirection

	for i := 0; i < len(args); i++ {
		rt, ok := redirTypes[args[i]]
		if !ok || quoted != nil && quoted[i] {
			clean = append(clean, args[i])
			continue
		}

		if rt == RedirErrToOut || rt == RedirOutToErr {
			redirs = append(redirs, Redirection{Type: rt})
			continue
		}

		if i+1 >= len(args) {
			switch rt {
			case RedirHeredoc, RedirHeredocStrip:
				return nil, nil, errMissingTarget{args[i], "delimiter"}
			case RedirHereString:
				return nil, nil, errMissingTarget{args[i], "content"}
			default:
				return nil, nil, errMissingTarget{args[i], "file path"}
			}
		}
		i++
		redirs = append(redirs, Redirection{Type: rt, Path: args[i]})
	}

	return clean, redirs, nil
}

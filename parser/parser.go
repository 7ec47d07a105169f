// Package parser groups a token stream into a Pipeline of command
// segments and redirections, ready for the executor.
package parser

import (
	"strings"

	"github.com/tysh-sh/tysh/lexer"
)

type parser struct {
	toks  <-chan lexer.Token
	cache *lexer.Token
}

func (p *parser) next() lexer.Token {
	var t lexer.Token
	if p.cache != nil {
		t, p.cache = *p.cache, nil
	} else {
		t = <-p.toks
	}
	return t
}

func (p *parser) peek() lexer.Token {
	if p.cache == nil {
		t := <-p.toks
		p.cache = &t
	}
	return *p.cache
}

// Parse tokenizes the first line of input and groups the tokens into a
// Pipeline.  The result is not shape-checked and heredoc bodies are not
// collected; see ParsePipeline for the full treatment.
func Parse(line string) (*Pipeline, error) {
	l := lexer.New(line)
	go l.Run()

	p := parser{toks: l.Out}
	pipe, err := p.parsePipeline(line)

	// Reading a closed channel yields the zero Token, which is TokError,
	// so draining after an early exit always terminates.
	for t := p.peek(); t.Kind != lexer.TokEof && t.Kind != lexer.TokError; t = p.peek() {
		p.next()
	}
	return pipe, err
}

// ParsePipeline parses a complete input: the command line on the first
// line, heredoc bodies on the lines after it.  The pipeline is
// validated and its heredoc contents are collected.
func ParsePipeline(input string) (*Pipeline, error) {
	line, rest, multiline := strings.Cut(input, "\n")

	pipe, err := Parse(line)
	if err != nil {
		return nil, err
	}
	if err := pipe.Validate(); err != nil {
		return nil, err
	}

	var lines []string
	if multiline {
		lines = strings.Split(rest, "\n")
	}
	if err := pipe.collectHeredocs(lines); err != nil {
		return nil, err
	}
	pipe.RawLine = input
	return pipe, nil
}

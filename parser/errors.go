package parser

import (
	"errors"
	"fmt"

	"github.com/tysh-sh/tysh/lexer"
)

var (
	ErrEmptyCommand    = errors.New("Empty command")
	ErrEmptyBeforePipe = errors.New("Empty command before pipe")
	ErrEmptyAfterPipe  = errors.New("Empty command after pipe")
	ErrBackgroundPos   = errors.New("Background operator must be the final token")
)

type errExpected struct {
	want string
	got  lexer.Token
}

func (e errExpected) Error() string {
	return fmt.Sprintf("Expected %s but got %s", e.want, e.got)
}

type errMissingTarget struct {
	op   string // Operator missing its target (‘>’, ‘<<’, etc.)
	what string // What kind of target it wanted
}

func (e errMissingTarget) Error() string {
	return fmt.Sprintf("Redirection ‘%s’ missing %s", e.op, e.what)
}

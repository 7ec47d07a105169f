// Package vm owns the runtime half of the shell: the variable table the
// expansion engine runs against and the executor that pipelines are
// handed to.
package vm

import (
	"github.com/tysh-sh/tysh/expand"
	"github.com/tysh-sh/tysh/parser"
)

type VM struct {
	Vars        *Vars
	Interactive bool
}

func New() *VM {
	v := &VM{Vars: NewVars()}
	v.Vars.SetStatus(0)
	return v
}

// Parse expands and parses one complete input without running it.
func (m *VM) Parse(input string) (*parser.Pipeline, error) {
	return parser.ParsePipeline(expand.Variables(input, m.Vars))
}

// RunLine expands, parses, and executes one complete input: the command
// line plus any heredoc body lines after it.
func (m *VM) RunLine(input string) error {
	line := expand.VariablesMut(input, m.Vars)

	pipe, err := parser.ParsePipeline(line)
	if err != nil {
		m.Vars.SetStatus(1)
		return err
	}
	m.Exec(pipe)
	return nil
}

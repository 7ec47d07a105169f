package vm

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/tysh-sh/tysh/log"
	"github.com/tysh-sh/tysh/parser"
)

const appendFlags = os.O_APPEND | os.O_CREATE | os.O_WRONLY

// Exec wires a validated pipeline into processes and runs it, recording
// the exit status of the last command under ‘?’.
func (m *VM) Exec(p *parser.Pipeline) {
	if len(p.Segments) == 1 {
		if fn, ok := builtins[p.Segments[0].Program]; ok {
			m.Vars.SetStatus(fn(m, p.Segments[0].Args))
			return
		}
	}

	cmds := make([]*exec.Cmd, len(p.Segments))
	for i, seg := range p.Segments {
		c := exec.Command(seg.Program, seg.Args...)
		c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
		cmds[i] = c
	}

	var closers []io.Closer
	if len(cmds) == 2 {
		r, w, err := os.Pipe()
		if err != nil {
			log.Warn("%s", err)
			m.Vars.SetStatus(1)
			return
		}
		cmds[0].Stdout = w
		cmds[1].Stdin = r
		closers = append(closers, r, w)
	}

	for i, seg := range p.Segments {
		if err := applyRedirs(cmds[i], seg.Redirs, &closers); err != nil {
			log.Warn("%s", err)
			closeAll(closers)
			m.Vars.SetStatus(1)
			return
		}
	}

	for _, c := range cmds {
		if err := c.Start(); err != nil {
			log.Warn("%s", err)
			closeAll(closers)
			m.Vars.SetStatus(127)
			return
		}
	}
	// The children hold their own descriptors now.
	closeAll(closers)

	if p.Background {
		if m.Interactive {
			fmt.Fprintf(os.Stderr, "[%d]\n", cmds[len(cmds)-1].Process.Pid)
		}
		go func() {
			for _, c := range cmds {
				c.Wait()
			}
		}()
		m.Vars.SetStatus(0)
		return
	}

	status := 0
	for _, c := range cmds {
		switch err := c.Wait(); err.(type) {
		case nil:
			status = 0
		case *exec.ExitError:
			status = err.(*exec.ExitError).ExitCode()
		default:
			log.Warn("%s", err)
			status = 1
		}
	}
	m.Vars.SetStatus(status)
}

func applyRedirs(c *exec.Cmd, redirs []parser.Redirection, closers *[]io.Closer) error {
	for _, r := range redirs {
		switch r.Type {
		case parser.RedirOutput:
			f, err := os.Create(r.Path)
			if err != nil {
				return errFileOp{"create", r.Path, err}
			}
			*closers = append(*closers, f)
			c.Stdout = f
		case parser.RedirAppend:
			f, err := os.OpenFile(r.Path, appendFlags, 0666)
			if err != nil {
				return errFileOp{"open", r.Path, err}
			}
			*closers = append(*closers, f)
			c.Stdout = f
		case parser.RedirInput:
			f, err := os.Open(r.Path)
			if err != nil {
				return errFileOp{"open", r.Path, err}
			}
			*closers = append(*closers, f)
			c.Stdin = f
		case parser.RedirErr:
			f, err := os.Create(r.Path)
			if err != nil {
				return errFileOp{"create", r.Path, err}
			}
			*closers = append(*closers, f)
			c.Stderr = f
		case parser.RedirErrAppend:
			f, err := os.OpenFile(r.Path, appendFlags, 0666)
			if err != nil {
				return errFileOp{"open", r.Path, err}
			}
			*closers = append(*closers, f)
			c.Stderr = f
		case parser.RedirErrToOut:
			c.Stderr = c.Stdout
		case parser.RedirOutToErr:
			c.Stdout = c.Stderr
		case parser.RedirHeredoc, parser.RedirHeredocStrip:
			c.Stdin = strings.NewReader(r.Content)
		case parser.RedirHereString:
			c.Stdin = strings.NewReader(r.Path + "\n")
		}
	}
	return nil
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}

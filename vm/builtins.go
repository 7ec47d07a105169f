package vm

import (
	"os"
	"strconv"

	"github.com/tysh-sh/tysh/log"
)

type builtinFn func(m *VM, args []string) int

var builtins = map[string]builtinFn{
	"cd":    cd,
	"exit":  exit,
	"set":   set,
	"unset": unset,
	"true":  func(*VM, []string) int { return 0 },
	"false": func(*VM, []string) int { return 1 },
}

func cd(_ *VM, args []string) int {
	var dir string
	switch len(args) {
	case 0:
		dir, _ = os.UserHomeDir()
	case 1:
		dir = args[0]
	default:
		log.Warn("cd: too many arguments")
		return 1
	}

	if err := os.Chdir(dir); err != nil {
		log.Warn("cd: %s", err)
		return 1
	}
	return 0
}

func exit(_ *VM, args []string) int {
	code := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			log.Warn("exit: bad status ‘%s’", args[0])
			return 1
		}
		code = n
	}
	os.Exit(code)
	panic("unreachable")
}

// set assigns a scalar (‘set name value’) or an array (‘set name v1 v2
// …’).
func set(m *VM, args []string) int {
	if len(args) < 2 {
		log.Warn("Usage: set name value...")
		return 1
	}

	var err error
	if len(args) == 2 {
		err = m.Vars.Set(args[0], args[1])
	} else {
		err = m.Vars.SetArray(args[0], args[1:])
	}
	if err != nil {
		log.Warn("set: %s", err)
		return 1
	}
	return 0
}

func unset(m *VM, args []string) int {
	for _, name := range args {
		m.Vars.Unset(name)
	}
	return 0
}

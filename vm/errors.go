package vm

import "fmt"

type errFileOp struct {
	desc string // Attempted action on file (‘open’, ‘create’, etc.)
	file string // File related to the error
	err  error  // Error that caused this
}

func (e errFileOp) Error() string {
	return fmt.Sprintf("Failed to %s file ‘%s’: %s", e.desc, e.file, e.err)
}

package vm

import (
	"fmt"
	"strconv"
)

// Vars is the variable table.  Every variable is a list of strings:
// scalars are single-element lists, arrays are the list itself.
type Vars struct {
	table map[string][]string
}

func NewVars() *Vars {
	return &Vars{table: make(map[string][]string, 64)}
}

// ValidName reports whether s is a settable variable name.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_',
			c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (v *Vars) Get(name string) (string, bool) {
	xs, ok := v.table[name]
	if !ok || len(xs) == 0 {
		return "", false
	}
	return xs[0], true
}

func (v *Vars) Set(name, value string) error {
	if !ValidName(name) {
		return fmt.Errorf("invalid variable name ‘%s’", name)
	}
	v.table[name] = []string{value}
	return nil
}

func (v *Vars) GetArray(name string) ([]string, bool) {
	xs, ok := v.table[name]
	return xs, ok
}

func (v *Vars) ArrayGet(name string, index int) (string, bool) {
	xs, ok := v.table[name]
	if !ok || index < 0 || index >= len(xs) {
		return "", false
	}
	return xs[index], true
}

func (v *Vars) SetArray(name string, values []string) error {
	if !ValidName(name) {
		return fmt.Errorf("invalid variable name ‘%s’", name)
	}
	xs := make([]string, len(values))
	copy(xs, values)
	v.table[name] = xs
	return nil
}

func (v *Vars) Unset(name string) {
	delete(v.table, name)
}

// SetStatus records the exit status of the last pipeline under ‘?’,
// which is not a settable name through Set.
func (v *Vars) SetStatus(code int) {
	v.table["?"] = []string{strconv.Itoa(code)}
}

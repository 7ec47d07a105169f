package expand

// Store is the variable and array storage the expansion engine runs
// against.  Lookups never mutate; only the assigning operators (‘:=’
// and ‘=’) write, and only through the mutable entry point.
type Store interface {
	Get(name string) (string, bool)
	Set(name, value string) error
	GetArray(name string) ([]string, bool)
	ArrayGet(name string, index int) (string, bool)
	SetArray(name string, values []string) error
}

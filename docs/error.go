package docs

import "fmt"

// MalformedFenceError aborts the whole document before anything executes.
type MalformedFenceError struct {
	Name string
	Line int
	Msg  string
}

func (e MalformedFenceError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Name, e.Line, e.Msg)
}

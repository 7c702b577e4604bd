package books

import (
	"io"
	"os"
)

// Stdout receives dry-run document text. A separate definition from the
// log writer so the two streams stay distinguishable.
type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

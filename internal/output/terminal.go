package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal checks if the writer is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

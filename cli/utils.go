package cli

import (
	"fmt"
	"io"
	"os"
)

// printf prints a message with a newline at the end.
func printf(w io.Writer, format string, a ...interface{}) {
	if w == nil {
		w = os.Stdout
	}
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Prog prefixes every diagnostic line.
const Prog = "revcomp"

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Errorf writes a single-line fatal diagnostic.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, Prog+": "+format+"\n", a...)
}

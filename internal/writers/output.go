// internal/writers/output.go
package writers

import (
	"fmt"
	"io"
	"os"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Create opens the output sink: "-" (or "") is stdout, which Close leaves
// open; anything else is created or truncated.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return fh, nil
}

// core/fasta/open.go
package fasta

import (
	"bufio"
	"io"
	"os"
)

type fileReader struct {
	*bufio.Reader
	io.Closer
}

// Open returns a reader for path; "-" (or "") selects stdin, which is not
// closed by Close. Gzip input is refused with ErrCompressed.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	var (
		src    io.Reader
		closer io.Closer = io.NopCloser(nil)
	)
	if path == "" || path == "-" {
		src = stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src, closer = fh, fh
	}
	br := bufio.NewReader(src)
	// Detect gzip by magic number (1F 8B).
	if sig, _ := br.Peek(2); len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		_ = closer.Close()
		return nil, ErrCompressed
	}
	return fileReader{Reader: br, Closer: closer}, nil
}

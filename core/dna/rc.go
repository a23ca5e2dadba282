// core/dna/rc.go
package dna

import (
	"errors"
	"fmt"
)

// ErrInvalidBase is the kind of every *InvalidBaseError.
var ErrInvalidBase = errors.New("invalid base")

// InvalidBaseError locates a byte outside the alphabet.
// Pos indexes the sequence as it was before the transform.
type InvalidBaseError struct {
	Base byte
	Pos  int
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base %q at position %d", e.Base, e.Pos)
}

func (e *InvalidBaseError) Unwrap() error { return ErrInvalidBase }

// ReverseComplement reverse-complements seq in place.
// seq is validated first; on error it is left untouched.
func ReverseComplement(seq []byte) error {
	n := len(seq)
	if i := Valid(seq); i >= 0 {
		return &InvalidBaseError{Base: seq[i], Pos: i}
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = complement[seq[j]], complement[seq[i]]
	}
	if n%2 == 1 {
		m := n / 2
		seq[m] = complement[seq[m]]
	}
	return nil
}

// RevComp returns the reverse complement of seq in a new slice.
func RevComp(seq []byte) ([]byte, error) {
	if len(seq) == 0 {
		return nil, nil
	}
	out := append([]byte(nil), seq...)
	if err := ReverseComplement(out); err != nil {
		return nil, err
	}
	return out, nil
}

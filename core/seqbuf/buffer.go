// core/seqbuf/buffer.go
package seqbuf

import (
	"errors"
	"math"
)

// ErrTooLarge is returned when a Buffer cannot grow to hold the data appended to it.
var ErrTooLarge = errors.New("seqbuf: buffer too large")

// NoLimit disables the capacity ceiling of a Buffer.
const NoLimit = math.MaxInt

// Buffer is an append-only byte container reused across records.
// Capacity doubles on growth so Append is amortized O(1).
type Buffer struct {
	data   []byte
	maxCap int
}

// New returns an empty Buffer with initialCap bytes preallocated and no ceiling.
func New(initialCap int) *Buffer { return NewLimited(initialCap, NoLimit) }

// NewLimited is New with a ceiling on the capacity the Buffer may grow to.
func NewLimited(initialCap, maxCap int) *Buffer {
	if maxCap <= 0 {
		maxCap = NoLimit
	}
	if initialCap < 0 {
		initialCap = 0
	}
	if initialCap > maxCap {
		initialCap = maxCap
	}
	return &Buffer{data: make([]byte, 0, initialCap), maxCap: maxCap}
}

func (b *Buffer) Len() int { return len(b.data) }
func (b *Buffer) Cap() int { return cap(b.data) }

// Bytes returns the valid region. It aliases the storage and is only valid
// until the next mutating call.
func (b *Buffer) Bytes() []byte { return b.data }

// Clear drops the contents but keeps the allocation.
func (b *Buffer) Clear() { b.data = b.data[:0] }

// Truncate keeps the first n bytes.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > len(b.data) {
		panic("seqbuf: truncation out of range")
	}
	b.data = b.data[:n]
}

// Append copies p to the end of the buffer. On ErrTooLarge the contents are unchanged.
func (b *Buffer) Append(p []byte) error {
	if err := b.reserve(len(p)); err != nil {
		return err
	}
	b.data = append(b.data, p...)
	return nil
}

func (b *Buffer) AppendByte(c byte) error {
	if err := b.reserve(1); err != nil {
		return err
	}
	b.data = append(b.data, c)
	return nil
}

// reserve makes room for n more bytes without reallocating inside append.
func (b *Buffer) reserve(n int) error {
	l, c := len(b.data), cap(b.data)
	if n <= c-l {
		return nil
	}
	if n > b.maxCap-l {
		return ErrTooLarge
	}
	need := l + n
	newCap := c * 2
	if c > b.maxCap/2 {
		newCap = b.maxCap
	}
	if newCap < need {
		newCap = need
	}
	grown := make([]byte, l, newCap)
	copy(grown, b.data)
	b.data = grown
	return nil
}

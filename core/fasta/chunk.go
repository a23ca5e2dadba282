// core/fasta/chunk.go
package fasta

import (
	"bytes"
	"fmt"
	"io"

	"revcomp-core/seqbuf"
)

// DefaultChunkSize is the working buffer size of a ChunkReader.
const DefaultChunkSize = 64 * 1024

const maxEmptyReads = 100

// ChunkReader reads a source in fixed-size chunks and hands out bytes and
// delimited runs of bytes, refilling across chunk boundaries.
type ChunkReader struct {
	src    io.Reader
	buf    []byte
	fill   int // valid bytes in buf
	cursor int // next unread byte, cursor <= fill
	eof    bool
	err    error // sticky read error, reported once buf is drained
	offset int64
}

func NewChunkReader(src io.Reader, size int) *ChunkReader {
	if size <= 0 {
		size = DefaultChunkSize
	}
	return &ChunkReader{src: src, buf: make([]byte, size)}
}

// Offset is the number of bytes consumed so far.
func (c *ChunkReader) Offset() int64 { return c.offset }

// refill loads the next chunk once the current one is drained.
// It returns io.EOF at end of input.
func (c *ChunkReader) refill() error {
	if c.cursor < c.fill {
		return nil
	}
	if c.err != nil {
		return c.err
	}
	if c.eof {
		return io.EOF
	}
	c.cursor, c.fill = 0, 0
	for i := 0; i < maxEmptyReads; i++ {
		n, err := c.src.Read(c.buf)
		if n < 0 || n > len(c.buf) {
			c.err = fmt.Errorf("read: invalid count %d", n)
			return c.err
		}
		c.fill = n
		if err == io.EOF {
			c.eof = true
		} else if err != nil {
			c.err = fmt.Errorf("read: %w", err)
		}
		if n > 0 {
			return nil
		}
		if c.err != nil {
			return c.err
		}
		if c.eof {
			return io.EOF
		}
	}
	c.err = io.ErrNoProgress
	return c.err
}

// ReadByte returns the next byte, or io.EOF.
func (c *ChunkReader) ReadByte() (byte, error) {
	if err := c.refill(); err != nil {
		return 0, err
	}
	b := c.buf[c.cursor]
	c.cursor++
	c.offset++
	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (c *ChunkReader) PeekByte() (byte, error) {
	if err := c.refill(); err != nil {
		return 0, err
	}
	return c.buf[c.cursor], nil
}

// ScanUntil appends to dst everything up to delim and consumes delim.
// found is false, with a nil error, when input ends first.
// A limit >= 0 caps the bytes appended by this call; going over it returns
// ErrLineTooLong with the first limit bytes already in dst.
func (c *ChunkReader) ScanUntil(delim byte, dst *seqbuf.Buffer, limit int) (found bool, err error) {
	appended := 0
	for {
		if err := c.refill(); err != nil {
			if err == io.EOF {
				return false, nil
			}
			return false, err
		}
		chunk := c.buf[c.cursor:c.fill]
		i := bytes.IndexByte(chunk, delim)
		if i >= 0 {
			chunk = chunk[:i]
		}
		if limit >= 0 && appended+len(chunk) > limit {
			take := limit - appended
			_ = dst.Append(chunk[:take])
			c.cursor += take
			c.offset += int64(take)
			return false, ErrLineTooLong
		}
		if err := dst.Append(chunk); err != nil {
			return false, err
		}
		appended += len(chunk)
		c.cursor += len(chunk)
		c.offset += int64(len(chunk))
		if i >= 0 {
			c.cursor++
			c.offset++
			return true, nil
		}
	}
}

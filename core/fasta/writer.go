// core/fasta/writer.go
package fasta

import (
	"bufio"
	"io"
)

// DefaultLineWidth is the number of bases per output line.
const DefaultLineWidth = 60

const writeBufSize = 64 * 1024

// Writer emits FASTA records with the sequence wrapped at a fixed width.
type Writer struct {
	w     *bufio.Writer
	width int
}

// NewWriter wraps w. A width <= 0 selects DefaultLineWidth.
func NewWriter(w io.Writer, width int) *Writer {
	if width <= 0 {
		width = DefaultLineWidth
	}
	return &Writer{w: bufio.NewWriterSize(w, writeBufSize), width: width}
}

func (fw *Writer) Width() int { return fw.width }

// WriteRecord writes ">name\n" followed by seq in lines of Width bytes.
// The last line holds the remainder; an empty seq writes the name line only.
func (fw *Writer) WriteRecord(name, seq []byte) error {
	if err := fw.w.WriteByte('>'); err != nil {
		return err
	}
	if _, err := fw.w.Write(name); err != nil {
		return err
	}
	if err := fw.w.WriteByte('\n'); err != nil {
		return err
	}
	for len(seq) > 0 {
		n := fw.width
		if n > len(seq) {
			n = len(seq)
		}
		if _, err := fw.w.Write(seq[:n]); err != nil {
			return err
		}
		if err := fw.w.WriteByte('\n'); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (fw *Writer) Flush() error { return fw.w.Flush() }

// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"revcomp-core/dna"
	"revcomp-core/fasta"
)

// Transform rewrites a record's sequence in place.
type Transform func(seq []byte) error

// Config controls buffer sizes and output layout. Zero values select the
// fasta package defaults.
type Config struct {
	LineWidth     int // bases per output line
	ChunkSize     int // input working buffer size
	MaxNameLen    int // longest accepted name line
	InitialSeqCap int // starting sequence buffer size
	MaxSeqLen     int // 0 = unbounded
	Transform     Transform
}

// Stats summarizes a run.
type Stats struct {
	Records int
	Bases   int64
}

// RecordError ties a transform failure to the record it happened in.
type RecordError struct {
	Record string
	Err    error
}

func (e *RecordError) Error() string { return fmt.Sprintf("record %q: %v", e.Record, e.Err) }
func (e *RecordError) Unwrap() error { return e.Err }

// Run reads records from src and writes each transformed record to dst.
// A record that fails to parse or transform is never written; records
// completed before the failure are flushed. ctx is checked between records.
func Run(ctx context.Context, src io.Reader, dst io.Writer, cfg Config) (Stats, error) {
	if cfg.Transform == nil {
		cfg.Transform = dna.ReverseComplement
	}
	opts := []fasta.Option{fasta.WithMaxSeqLen(cfg.MaxSeqLen)}
	if cfg.ChunkSize > 0 {
		opts = append(opts, fasta.WithChunkSize(cfg.ChunkSize))
	}
	if cfg.MaxNameLen > 0 {
		opts = append(opts, fasta.WithMaxNameLen(cfg.MaxNameLen))
	}
	if cfg.InitialSeqCap > 0 {
		opts = append(opts, fasta.WithInitialSeqCap(cfg.InitialSeqCap))
	}
	p := fasta.NewParser(src, opts...)
	w := fasta.NewWriter(dst, cfg.LineWidth)

	var st Stats
	runErr := func() error {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := p.Next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			if err := cfg.Transform(rec.Seq); err != nil {
				return &RecordError{Record: string(rec.Name), Err: err}
			}
			if err := w.WriteRecord(rec.Name, rec.Seq); err != nil {
				return fmt.Errorf("write: %w", err)
			}
			st.Records++
			st.Bases += int64(len(rec.Seq))
		}
	}()
	if err := w.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("write: %w", err)
	}
	return st, runErr
}

// IsDataError reports whether err came from the input rather than from I/O
// on the output side or cancellation.
func IsDataError(err error) bool {
	var pe *fasta.ParseError
	var re *RecordError
	return errors.As(err, &pe) || errors.As(err, &re)
}

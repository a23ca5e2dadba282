// core/fasta/parser.go
package fasta

import (
	"io"

	"revcomp-core/seqbuf"
)

// Defaults for Parser options.
const (
	// DefaultMaxNameLen bounds a name line, excluding '>' and the newline.
	DefaultMaxNameLen = 64 * 1024

	// DefaultInitialSeqCap is the starting size of the sequence buffer.
	DefaultInitialSeqCap = 1 << 20
)

// Record is one parsed FASTA entry. Name and Seq alias the parser's buffers
// and are overwritten by the next call to Next; copy them to keep them.
type Record struct {
	Name []byte // header text after '>', newline stripped
	Seq  []byte // bases with line breaks removed
}

type state int

const (
	stateAwaitingRecord state = iota
	stateReadingName
	stateReadingSequence
	stateDone
	stateError
)

// Option configures a Parser.
type Option func(*Parser)

// WithChunkSize sets the working buffer size of the underlying ChunkReader.
func WithChunkSize(n int) Option { return func(p *Parser) { p.chunkSize = n } }

// WithMaxNameLen bounds the length of a name line.
func WithMaxNameLen(n int) Option { return func(p *Parser) { p.maxName = n } }

// WithInitialSeqCap presizes the sequence buffer.
func WithInitialSeqCap(n int) Option { return func(p *Parser) { p.initSeq = n } }

// WithMaxSeqLen caps a record's sequence; 0 means no cap.
func WithMaxSeqLen(n int) Option { return func(p *Parser) { p.maxSeq = n } }

// Parser reads FASTA records one at a time from a byte stream.
// Memory use is one record's sequence plus one chunk.
type Parser struct {
	r     *ChunkReader
	state state
	name  *seqbuf.Buffer
	seq   *seqbuf.Buffer
	err   error

	chunkSize int
	maxName   int
	initSeq   int
	maxSeq    int
}

func NewParser(src io.Reader, opts ...Option) *Parser {
	p := &Parser{
		chunkSize: DefaultChunkSize,
		maxName:   DefaultMaxNameLen,
		initSeq:   DefaultInitialSeqCap,
	}
	for _, o := range opts {
		o(p)
	}
	if p.maxName <= 0 {
		p.maxName = DefaultMaxNameLen
	}
	p.r = NewChunkReader(src, p.chunkSize)
	p.name = seqbuf.New(256)
	p.seq = seqbuf.NewLimited(p.initSeq, p.maxSeq)
	return p
}

// Next returns the next record, or io.EOF once the input is exhausted.
// After a failure every call returns the same *ParseError.
func (p *Parser) Next() (Record, error) {
	for {
		switch p.state {
		case stateDone:
			return Record{}, io.EOF
		case stateError:
			return Record{}, p.err

		case stateAwaitingRecord:
			b, err := p.r.PeekByte()
			switch {
			case err == io.EOF:
				p.state = stateDone
			case err != nil:
				return Record{}, p.fail(err)
			case b != '>':
				return Record{}, p.fail(ErrMalformedStart)
			default:
				p.state = stateReadingName
			}

		case stateReadingName:
			if err := p.readName(); err != nil {
				return Record{}, p.fail(err)
			}
			p.state = stateReadingSequence

		case stateReadingSequence:
			done, err := p.readSequenceLine()
			if err != nil {
				return Record{}, p.fail(err)
			}
			if done {
				return Record{Name: p.name.Bytes(), Seq: p.seq.Bytes()}, nil
			}
		}
	}
}

// readName consumes the '>' marker and the name line.
func (p *Parser) readName() error {
	if _, err := p.r.ReadByte(); err != nil {
		return err
	}
	p.name.Clear()
	p.seq.Clear()
	if _, err := p.r.ScanUntil('\n', p.name, p.maxName+1); err != nil {
		if err == ErrLineTooLong {
			return ErrNameTooLong
		}
		return err
	}
	trimCR(p.name)
	if p.name.Len() > p.maxName {
		return ErrNameTooLong
	}
	return nil
}

// readSequenceLine appends one line to the sequence. It reports done when
// the record ends: at EOF, or before a '>' which is left unread.
func (p *Parser) readSequenceLine() (done bool, err error) {
	b, err := p.r.PeekByte()
	switch {
	case err == io.EOF:
		p.state = stateDone
		return true, nil
	case err != nil:
		return false, err
	case b == '>':
		p.state = stateReadingName
		return true, nil
	}
	mark := p.seq.Len()
	if _, err := p.r.ScanUntil('\n', p.seq, -1); err != nil {
		return false, err
	}
	if p.seq.Len() > mark {
		trimCR(p.seq)
	}
	return false, nil
}

func (p *Parser) fail(err error) error {
	pe := &ParseError{Offset: p.r.Offset(), Err: err}
	if p.state == stateReadingSequence {
		pe.Record = string(p.name.Bytes())
	}
	p.err = pe
	p.state = stateError
	return pe
}

func trimCR(b *seqbuf.Buffer) {
	if n := b.Len(); n > 0 && b.Bytes()[n-1] == '\r' {
		b.Truncate(n - 1)
	}
}

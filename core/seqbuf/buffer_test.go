package seqbuf

import (
	"bytes"
	"errors"
	"testing"
)

func TestAppendKeepsContentsAcrossGrowth(t *testing.T) {
	b := New(2)
	var want []byte
	for i := 0; i < 100; i++ {
		chunk := []byte{byte('A' + i%4), byte('a' + i%26), '!'}
		if err := b.Append(chunk); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		want = append(want, chunk...)
		if b.Len() != len(want) {
			t.Fatalf("len = %d, want %d", b.Len(), len(want))
		}
		if b.Len() > b.Cap() {
			t.Fatalf("len %d exceeds cap %d", b.Len(), b.Cap())
		}
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("contents corrupted after growth")
	}
}

func TestGrowthDoubles(t *testing.T) {
	b := New(4)
	_ = b.Append([]byte("abcd"))
	_ = b.AppendByte('e')
	if b.Cap() != 8 {
		t.Fatalf("cap = %d, want 8 after doubling", b.Cap())
	}
	// doubling is not enough: grow to exactly what fits
	_ = b.Append(make([]byte, 20))
	if b.Cap() != 25 {
		t.Fatalf("cap = %d, want 25", b.Cap())
	}
}

func TestZeroInitialCapacity(t *testing.T) {
	b := New(0)
	if err := b.AppendByte('x'); err != nil {
		t.Fatalf("append: %v", err)
	}
	if string(b.Bytes()) != "x" {
		t.Fatalf("got %q", b.Bytes())
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	b := New(1)
	_ = b.Append([]byte("ACGTACGT"))
	c := b.Cap()
	b.Clear()
	if b.Len() != 0 || b.Cap() != c {
		t.Fatalf("after Clear len=%d cap=%d, want 0/%d", b.Len(), b.Cap(), c)
	}
	_ = b.Append([]byte("TT"))
	if string(b.Bytes()) != "TT" {
		t.Fatalf("reuse after Clear: got %q", b.Bytes())
	}
}

func TestTruncate(t *testing.T) {
	b := New(8)
	_ = b.Append([]byte("ACGT\r"))
	b.Truncate(4)
	if string(b.Bytes()) != "ACGT" {
		t.Fatalf("got %q", b.Bytes())
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range truncate")
		}
	}()
	b.Truncate(5)
}

func TestLimitedBufferRejectsOversize(t *testing.T) {
	b := NewLimited(2, 6)
	if err := b.Append([]byte("ACGT")); err != nil {
		t.Fatalf("append within limit: %v", err)
	}
	if b.Cap() > 6 {
		t.Fatalf("cap %d exceeds ceiling", b.Cap())
	}
	err := b.Append([]byte("ACG"))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("want ErrTooLarge, got %v", err)
	}
	if string(b.Bytes()) != "ACGT" {
		t.Fatalf("failed append changed contents: %q", b.Bytes())
	}
	if err := b.Append([]byte("AC")); err != nil {
		t.Fatalf("append up to the ceiling: %v", err)
	}
	if b.Len() != 6 {
		t.Fatalf("len = %d, want 6", b.Len())
	}
}

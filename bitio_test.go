package dxcompress

import (
	"bytes"
	"testing"
)

func TestBitWriterPacksLSBFirst(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(&buf)

	// Two 9-bit codes: 0x1FF and 0x001, packed LSB-first.
	if err := bw.writeCode(0x1FF, 9); err != nil {
		t.Fatal(err)
	}
	if err := bw.writeCode(0x001, 9); err != nil {
		t.Fatal(err)
	}
	if err := bw.flush(); err != nil {
		t.Fatal(err)
	}

	got := buf.Bytes()
	want := []byte{0xFF, 0x03, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %X, want %X", got, want)
	}
}

func TestBitWriterReaderRoundtrip(t *testing.T) {
	codes := []uint32{5, 300, 1, 511, 2, 1023}
	widths := []uint{9, 9, 9, 9, 10, 10}

	var buf bytes.Buffer
	bw := newBitWriter(&buf)
	for i, c := range codes {
		if err := bw.writeCode(c, widths[i]); err != nil {
			t.Fatal(err)
		}
	}
	if err := bw.flush(); err != nil {
		t.Fatal(err)
	}

	br := newBitReader(&buf, nil)
	for i, want := range codes {
		got, err := br.readCode(widths[i])
		if err != nil {
			t.Fatalf("readCode[%d]: %v", i, err)
		}
		if got != want {
			t.Fatalf("readCode[%d] = %d, want %d", i, got, want)
		}
	}
}

func TestBitWriterGroupPadding(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(&buf)

	// One 9-bit code (one byte worth of bits plus one bit carried over:
	// 9 bits needs 2 bytes at this width). Force a pad at width 9: the
	// byte count emitted so far must become a multiple of 9.
	if err := bw.writeCode(1, 9); err != nil {
		t.Fatal(err)
	}
	beforePad := bw.total
	if err := bw.pad(9); err != nil {
		t.Fatal(err)
	}
	afterPad := bw.total

	// writeCode(1, 9) only flushes full bytes as they accumulate (8 of the
	// 9 bits), so before padding exactly 1 byte has been emitted; pad
	// must first flush the pending bit into its own byte (2 total) and
	// then top up to the next multiple of 9 (9 total).
	if beforePad != 1 {
		t.Fatalf("bytes emitted before pad = %d, want 1", beforePad)
	}
	if afterPad != 9 {
		t.Fatalf("bytes emitted after pad = %d, want 9", afterPad)
	}
}

func TestBitReaderDiscardPaddingMirrorsWriter(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitWriter(&buf)
	if err := bw.writeCode(1, 9); err != nil {
		t.Fatal(err)
	}
	if err := bw.pad(9); err != nil {
		t.Fatal(err)
	}
	if err := bw.writeCode(42, 10); err != nil {
		t.Fatal(err)
	}
	if err := bw.flush(); err != nil {
		t.Fatal(err)
	}

	br := newBitReader(&buf, nil)
	if _, err := br.readCode(9); err != nil {
		t.Fatal(err)
	}
	if err := br.discardPadding(9); err != nil {
		t.Fatal(err)
	}
	got, err := br.readCode(10)
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

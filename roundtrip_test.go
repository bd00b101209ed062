package dxcompress

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func roundtrip(t *testing.T, input []byte, maxbits int) []byte {
	t.Helper()

	var compressed bytes.Buffer
	var enc Encoder
	if _, err := enc.Encode(bytes.NewReader(input), &compressed, maxbits); err != nil {
		t.Fatalf("Encode(maxbits=%d): %v", maxbits, err)
	}

	var decompressed bytes.Buffer
	var dec Decoder
	if _, err := dec.Decode(bytes.NewReader(compressed.Bytes()), &decompressed, nil); err != nil {
		t.Fatalf("Decode(maxbits=%d): %v", maxbits, err)
	}

	if !bytes.Equal(decompressed.Bytes(), input) {
		t.Fatalf("roundtrip mismatch at maxbits=%d: got %d bytes, want %d", maxbits, decompressed.Len(), len(input))
	}
	return compressed.Bytes()
}

func TestRoundtripAllWidths(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 2500) // 112,500 bytes
	input := []byte(text)

	for maxbits := minBits; maxbits <= maxBits; maxbits++ {
		maxbits := maxbits
		t.Run("", func(t *testing.T) {
			roundtrip(t, input, maxbits)
		})
	}
}

func TestRoundtripRepeatedByte(t *testing.T) {
	input := bytes.Repeat([]byte{'A'}, 512)

	compressed := roundtrip(t, input, 12)

	want := [3]byte{0x1F, 0x9D, 0x8C}
	if compressed[0] != want[0] || compressed[1] != want[1] || compressed[2] != want[2] {
		t.Fatalf("header = %02X %02X %02X, want %02X %02X %02X",
			compressed[0], compressed[1], compressed[2], want[0], want[1], want[2])
	}
}

func TestRoundtripTobeornottobeorTobeornot(t *testing.T) {
	roundtrip(t, []byte("TOBEORNOTTOBEORTOBEORNOT"), 16)
}

func TestRoundtripRandomLargeInput(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	input := make([]byte, 2*1024*1024)
	if _, err := src.Read(input); err != nil {
		t.Fatalf("generating pseudorandom input: %v", err)
	}

	// Pseudorandom input is incompressible: the dictionary fills quickly,
	// which is the condition under which a CLEAR requested by the ratio
	// heuristic is actually emitted.
	roundtrip(t, input, 16)
}

func TestRoundtripEmptyInput(t *testing.T) {
	var compressed bytes.Buffer
	var enc Encoder
	ratio, err := enc.Encode(bytes.NewReader(nil), &compressed, 16)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if ratio != -1.0 {
		t.Fatalf("ratio = %v, want -1.0", ratio)
	}
	if compressed.Len() != 3 {
		t.Fatalf("compressed length = %d, want 3", compressed.Len())
	}

	var decompressed bytes.Buffer
	var dec Decoder
	if _, err := dec.Decode(&compressed, &decompressed, nil); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decompressed.Len() != 0 {
		t.Fatalf("decompressed length = %d, want 0", decompressed.Len())
	}
}

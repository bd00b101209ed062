// Package dxcompress implements the classical compress(1) .Z file format:
// an LZW encoder and decoder that reproduce Spencer Thomas's 1984
// bit-packing and dictionary-clear quirks closely enough to interoperate
// with the original tool.
package dxcompress

import "fmt"

// Result mirrors the outcome categories the historical compress(1)
// implementation reports. Encoder.Encode and Decoder.Decode return a plain
// error, but that error always unwraps to an *Error carrying one of these.
type Result int

const (
	RESULT_OK Result = iota
	RESULT_READ_ERROR
	RESULT_WRITE_ERROR
	RESULT_FORMAT_ERROR
)

func (r Result) String() string {
	switch r {
	case RESULT_OK:
		return "ok"
	case RESULT_READ_ERROR:
		return "read error"
	case RESULT_WRITE_ERROR:
		return "write error"
	case RESULT_FORMAT_ERROR:
		return "format error"
	default:
		return fmt.Sprintf("dxcompress.Result(%d)", int(r))
	}
}

// Error is the error type returned by Encode and Decode on failure. The
// caller must assume the destination stream is in an undefined state and
// discard it; neither procedure retries internally.
type Error struct {
	Result Result
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dxcompress: %s: %v", e.Result, e.Cause)
	}
	return fmt.Sprintf("dxcompress: %s", e.Result)
}

func (e *Error) Unwrap() error { return e.Cause }

func readErr(cause error) error  { return &Error{Result: RESULT_READ_ERROR, Cause: cause} }
func writeErr(cause error) error { return &Error{Result: RESULT_WRITE_ERROR, Cause: cause} }
func formatErr(cause error) error {
	return &Error{Result: RESULT_FORMAT_ERROR, Cause: cause}
}

const (
	magic0 byte = 0x1F
	magic1 byte = 0x9D

	blockCompressFlag byte = 0x80
	reservedMask      byte = 0x60
	maxbitsMask       byte = 0x1F

	minBits = 9
	maxBits = 16

	clearCode = 256

	// checkInterval is the number of input bytes between re-evaluations
	// of the running compression ratio. Historical value; changing it
	// affects compression quality only, never correctness.
	checkInterval = 5000

	// ioBufferSize bounds the internal read/write buffering used by both
	// the encoder and the decoder.
	ioBufferSize = 32 * 1024
)

// dictOffset returns the first free dictionary slot: 257 when the stream
// reserves code 256 for CLEAR, 256 otherwise.
func dictOffset(blockCompress bool) uint32 {
	if blockCompress {
		return 257
	}
	return 256
}

func isPowerOfTwo(n uint32) bool {
	return n != 0 && n&(n-1) == 0
}

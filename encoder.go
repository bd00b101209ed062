package dxcompress

import (
	"bufio"
	"fmt"
	"io"
)

// Encoder turns a byte stream into a .Z byte stream. An Encoder holds its
// own dictionary and is not safe for concurrent use, but may be reused for
// successive, independent calls to Encode.
type Encoder struct {
	dict *encDictionary
}

// Encode reads all of r, writes the .Z-encoded result to w, and reports
// the compression ratio achieved: 1 - output_bytes/input_bytes, or -1.0 if
// r was empty. On failure it returns an *Error and the destination stream
// must be considered corrupt.
func (e *Encoder) Encode(r io.Reader, w io.Writer, maxbits int) (float64, error) {
	if maxbits < minBits || maxbits > maxBits {
		return 0, formatErr(fmt.Errorf("maxbits %d outside [%d,%d]", maxbits, minBits, maxBits))
	}

	hdr := encodeHeader(maxbits)
	if _, err := w.Write(hdr[:]); err != nil {
		return 0, writeErr(err)
	}

	in := bufio.NewReaderSize(r, ioBufferSize)
	first, err := in.ReadByte()
	if err == io.EOF {
		return -1.0, nil
	}
	if err != nil {
		return 0, readErr(err)
	}

	if e.dict == nil {
		e.dict = newEncDictionary()
	} else {
		e.dict.reset()
	}

	bw := newBitWriter(w)
	width := uint(minBits)
	limit := uint32(1) << uint(maxbits)
	next := dictOffset(true)
	cur := uint32(first)
	inputBytes := int64(1)

	best := 0.0
	sinceCheck := 0
	clearPending := false

	for {
		c, err := in.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, readErr(err)
		}
		inputBytes++
		sinceCheck++

		if code, ok := e.dict.lookup(cur, c); ok {
			cur = code
			continue
		}

		if err := bw.writeCode(cur, width); err != nil {
			return 0, writeErr(err)
		}

		// The decoder adds each entry one code later than the encoder, so the
		// width grows after the code emitted while next sits at 2^width,
		// just before slot 2^width is inserted.
		if isPowerOfTwo(next) && (width < uint(maxbits) || (width == minBits && maxbits == minBits)) {
			if err := bw.pad(width); err != nil {
				return 0, writeErr(err)
			}
			width++
		}

		if next < limit {
			e.dict.insert(cur, c, next)
			next++
		} else if clearPending {
			if err := bw.writeCode(clearCode, width); err != nil {
				return 0, writeErr(err)
			}
			if err := bw.pad(width); err != nil {
				return 0, writeErr(err)
			}
			width = minBits
			next = dictOffset(true)
			e.dict.reset()
			clearPending = false
			best = 0.0
			sinceCheck = 0
		}

		cur = uint32(c)

		if sinceCheck >= checkInterval {
			sinceCheck = 0
			if bw.total > 0 {
				ratio := float64(inputBytes) / float64(bw.total)
				if ratio >= best {
					best = ratio
				} else {
					best = 0.0
					clearPending = true
				}
			}
		}
	}

	if err := bw.writeCode(cur, width); err != nil {
		return 0, writeErr(err)
	}
	if err := bw.flush(); err != nil {
		return 0, writeErr(err)
	}

	outputBytes := int64(len(hdr)) + bw.total
	return 1 - float64(outputBytes)/float64(inputBytes), nil
}

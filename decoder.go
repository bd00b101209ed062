package dxcompress

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Decoder turns a .Z byte stream back into the original bytes. A Decoder
// holds no state: each call to Decode allocates its own dictionary, so a
// Decoder may be reused for successive, independent calls to Decode.
type Decoder struct{}

// Decode reads a .Z stream from r, writes the decompressed bytes to w, and
// reports the ratio 1 - input_bytes/output_bytes. prefix, if non-empty, is
// treated as bytes already consumed from r by the caller (typically while
// probing the format) and is replayed before r's own bytes. On failure it
// returns an *Error and the destination stream must be considered corrupt.
func (d *Decoder) Decode(r io.Reader, w io.Writer, prefix []byte) (float64, error) {
	br := newBitReader(r, prefix)

	var raw [3]byte
	for i := range raw {
		b, err := br.readByte()
		if err != nil {
			if err == io.EOF {
				return 0, formatErr(fmt.Errorf("truncated header"))
			}
			return 0, readErr(err)
		}
		raw[i] = b
	}
	hdr, err := decodeHeader(raw)
	if err != nil {
		return 0, err
	}

	dict := newDecDictionary(hdr.maxbits)
	scratch := make([]byte, uint32(1)<<uint(hdr.maxbits))
	limit := uint32(1) << uint(hdr.maxbits)
	offset := dictOffset(hdr.blockCompress)

	out := bufio.NewWriterSize(w, ioBufferSize)
	outputBytes := int64(0)
	writeBytes := func(bs []byte) error {
		n, err := out.Write(bs)
		outputBytes += int64(n)
		return err
	}

	width := uint(minBits)
	next := offset

	readLiteral := func() (uint32, error) {
		code, err := br.readCode(width)
		if err != nil {
			return 0, err
		}
		if code >= 256 {
			return 0, formatErr(fmt.Errorf("code %d is not a literal", code))
		}
		return code, nil
	}

	prev, err := readLiteral()
	if err == io.EOF {
		if err := out.Flush(); err != nil {
			return 0, writeErr(err)
		}
		return 0, nil
	}
	if err != nil {
		if _, ok := err.(*Error); ok {
			return 0, err
		}
		return 0, readErr(err)
	}
	if err := writeBytes([]byte{byte(prev)}); err != nil {
		return 0, writeErr(err)
	}

decodeLoop:
	for {
		cur, err := br.readCode(width)
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, readErr(err)
		}

		if hdr.blockCompress && cur == clearCode {
			if err := br.discardPadding(width); err != nil {
				if errors.Is(err, io.EOF) {
					return 0, formatErr(fmt.Errorf("truncated padding after CLEAR"))
				}
				return 0, readErr(err)
			}
			width = minBits
			next = offset

			p, err := readLiteral()
			if err == io.EOF {
				break decodeLoop
			}
			if err != nil {
				if _, ok := err.(*Error); ok {
					return 0, err
				}
				return 0, readErr(err)
			}
			prev = p
			if err := writeBytes([]byte{byte(prev)}); err != nil {
				return 0, writeErr(err)
			}
			continue
		}

		if cur > next {
			return 0, formatErr(fmt.Errorf("code %d exceeds next free slot %d", cur, next))
		}

		var expansion []byte
		var firstByte byte
		if cur == next {
			exp, first, eerr := dict.expand(prev, scratch)
			if eerr != nil {
				return 0, formatErr(eerr)
			}
			expansion = make([]byte, len(exp)+1)
			copy(expansion, exp)
			expansion[len(exp)] = first
			firstByte = first
		} else {
			exp, first, eerr := dict.expand(cur, scratch)
			if eerr != nil {
				return 0, formatErr(eerr)
			}
			expansion = exp
			firstByte = first
		}

		if err := writeBytes(expansion); err != nil {
			return 0, writeErr(err)
		}

		if next < limit {
			dict.set(next, prev, firstByte)
			next++
			if isPowerOfTwo(next) && (width < uint(hdr.maxbits) || (width == minBits && hdr.maxbits == minBits)) {
				if err := br.discardPadding(width); err != nil {
					if errors.Is(err, io.EOF) {
						break decodeLoop
					}
					return 0, readErr(err)
				}
				width++
			}
		}

		prev = cur
	}

	if err := out.Flush(); err != nil {
		return 0, writeErr(err)
	}

	if outputBytes == 0 {
		return 0, nil
	}
	return 1 - float64(br.total)/float64(outputBytes), nil
}

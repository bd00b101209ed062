package dxcompress

import "fmt"

// header is the parsed form of the 3-byte .Z file header.
type header struct {
	maxbits       int
	blockCompress bool
}

// encodeHeader returns the 3 on-disk header bytes for maxbits. The
// encoder always sets BLOCK_COMPRESS, matching every modern compress(1)
// implementation.
func encodeHeader(maxbits int) [3]byte {
	return [3]byte{magic0, magic1, blockCompressFlag | byte(maxbits)}
}

// decodeHeader validates and parses a 3-byte .Z header.
func decodeHeader(b [3]byte) (header, error) {
	if b[0] != magic0 || b[1] != magic1 {
		return header{}, formatErr(fmt.Errorf("bad magic %#02x %#02x", b[0], b[1]))
	}
	if b[2]&reservedMask != 0 {
		return header{}, formatErr(fmt.Errorf("reserved bits set in flags byte %#02x", b[2]))
	}
	maxbits := int(b[2] & maxbitsMask)
	if maxbits < minBits || maxbits > maxBits {
		return header{}, formatErr(fmt.Errorf("maxbits %d outside [%d,%d]", maxbits, minBits, maxBits))
	}
	return header{
		maxbits:       maxbits,
		blockCompress: b[2]&blockCompressFlag != 0,
	}, nil
}

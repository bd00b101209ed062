package dxcompress

import "fmt"

// decDictionary is the decoder's dictionary: since codes are assigned
// sequentially, a flat array indexed by code suffices.
type decDictionary struct {
	prev []uint32
	ch   []byte
}

func newDecDictionary(maxbits int) *decDictionary {
	n := uint32(1) << uint(maxbits)
	return &decDictionary{
		prev: make([]uint32, n),
		ch:   make([]byte, n),
	}
}

func (d *decDictionary) set(code, prev uint32, b byte) {
	d.prev[code] = prev
	d.ch[code] = b
}

// expand walks the (prev, byte) chain for code down to a literal (< 256)
// and writes the expansion into the tail of scratch, which must be sized
// at least 2^maxbits (the maximum possible chain length, since prev(c) < c
// and every code in the chain is distinct). It returns the expansion as a
// subslice of scratch and the expansion's first byte.
func (d *decDictionary) expand(code uint32, scratch []byte) ([]byte, byte, error) {
	n := len(scratch)
	i := n
	c := code
	for {
		if c < 256 {
			i--
			scratch[i] = byte(c)
			return scratch[i:], byte(c), nil
		}
		if int(c) >= len(d.ch) {
			return nil, 0, fmt.Errorf("code %d has no dictionary entry", c)
		}
		i--
		if i < 0 {
			return nil, 0, fmt.Errorf("code %d expands beyond scratch capacity", code)
		}
		scratch[i] = d.ch[c]
		c = d.prev[c]
	}
}

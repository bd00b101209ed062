package main

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/dennis95/go-dxcompress"
	"github.com/ulikunitz/xz"
)

// algorithm picks which collaborator compresses/decompresses the stream.
// Only "z" exercises the LZW codec this repository implements; "gzip" and
// "xz" are thin external-library wrappers outside the codec core, built
// here only because a complete CLI needs somewhere to route -gzip/-xz.
type algorithm string

const (
	algorithmZ    algorithm = "z"
	algorithmGzip algorithm = "gzip"
	algorithmXZ   algorithm = "xz"
)

func parseAlgorithm(s string) (algorithm, error) {
	switch algorithm(s) {
	case algorithmZ, algorithmGzip, algorithmXZ:
		return algorithm(s), nil
	default:
		return "", fmt.Errorf("unknown algorithm %q (want z, gzip, or xz)", s)
	}
}

func (a algorithm) suffix() string {
	switch a {
	case algorithmGzip:
		return ".gz"
	case algorithmXZ:
		return ".xz"
	default:
		return ".Z"
	}
}

// compress reads all of r, writes the compressed form to w, and reports
// the ratio the underlying codec achieved (only the "z" path actually
// measures this; the gzip/xz wrappers report 0 since neither library
// exposes a comparable figure).
func compress(a algorithm, r io.Reader, w io.Writer, maxbits int) (float64, error) {
	switch a {
	case algorithmZ:
		var enc dxcompress.Encoder
		return enc.Encode(r, w, maxbits)
	case algorithmGzip:
		gw := gzip.NewWriter(w)
		if _, err := io.Copy(gw, r); err != nil {
			return 0, err
		}
		return 0, gw.Close()
	case algorithmXZ:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return 0, err
		}
		if _, err := io.Copy(xw, r); err != nil {
			return 0, err
		}
		return 0, xw.Close()
	default:
		return 0, fmt.Errorf("unknown algorithm %q", a)
	}
}

// decompress is compress's inverse.
func decompress(a algorithm, r io.Reader, w io.Writer) (float64, error) {
	switch a {
	case algorithmZ:
		var dec dxcompress.Decoder
		return dec.Decode(r, w, nil)
	case algorithmGzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return 0, err
		}
		defer gr.Close()
		_, err = io.Copy(w, gr)
		return 0, err
	case algorithmXZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return 0, err
		}
		_, err = io.Copy(w, xr)
		return 0, err
	default:
		return 0, fmt.Errorf("unknown algorithm %q", a)
	}
}

// Command dxz is a CLI front end for the LZW .Z codec implemented by this
// module, plus thin gzip/xz wrappers for collaborators outside the codec
// core. Option parsing, suffix handling, and the decision of whether to
// keep output that didn't shrink the input are ordinary CLI glue, not
// codec semantics.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dennis95/go-dxcompress"
	"golang.org/x/exp/slices"
)

func main() {
	var (
		maxbits     int
		decompress_ bool
		toStdout    bool
		force       bool
		keep        bool
		verbose     bool
		useXZ       bool
		useGzip     bool
		profilePath string
	)

	flag.IntVar(&maxbits, "maxbits", 16, "maximum LZW code width, 9-16 (.Z only)")
	flag.BoolVar(&decompress_, "d", false, "decompress instead of compress")
	flag.BoolVar(&toStdout, "c", false, "write output to stdout, keep input files")
	flag.BoolVar(&force, "f", false, "overwrite output files, and keep output even if it did not shrink the input")
	flag.BoolVar(&keep, "k", false, "keep (don't remove) input files")
	flag.BoolVar(&verbose, "v", false, "print a per-file compression ratio report")
	flag.BoolVar(&useXZ, "xz", false, "use xz instead of the .Z LZW format")
	flag.BoolVar(&useGzip, "gzip", false, "use gzip instead of the .Z LZW format")
	flag.StringVar(&profilePath, "profile", "", "JSON file with {\"maxbits\":.., \"algorithm\":..} overrides")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dxz [flags] file...\n\n")
		fmt.Fprintf(os.Stderr, "Compress or decompress files with the classical .Z (LZW) format.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	algo := algorithmZ
	switch {
	case useXZ && useGzip:
		log.Fatal("-xz and -gzip are mutually exclusive")
	case useXZ:
		algo = algorithmXZ
	case useGzip:
		algo = algorithmGzip
	}

	if profilePath != "" {
		p, err := loadProfile(profilePath, maxbits, string(algo))
		if err != nil {
			log.Fatalf("Profile: %v", err)
		}
		maxbits = p.maxbits
		a, err := parseAlgorithm(p.algorithm)
		if err != nil {
			log.Fatalf("Profile: %v", err)
		}
		algo = a
	}

	if maxbits < 9 || maxbits > 16 {
		log.Fatalf("-maxbits must be between 9 and 16, got %d", maxbits)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	process := func(path string) (float64, error) {
		return processOne(path, algo, maxbits, decompress_, toStdout, force, keep)
	}

	results := processFiles(paths, process)
	slices.SortFunc(results, func(a, b fileResult) int {
		switch {
		case a.ratio < b.ratio:
			return -1
		case a.ratio > b.ratio:
			return 1
		default:
			return 0
		}
	})

	exitCode := 0
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "dxz: %s: %v\n", r.path, r.err)
			exitCode = 1
			continue
		}
		if verbose {
			log.Printf("%s: ratio %.1f%%", r.path, r.ratio*100)
		}
	}
	os.Exit(exitCode)
}

// processOne compresses or decompresses a single file, returning the ratio
// the codec reported so the caller can decide whether to keep output that
// did not actually shrink the input (a CLI policy decision the codec
// deliberately leaves out-of-band).
func processOne(path string, algo algorithm, maxbits int, decompress_, toStdout, force, keep bool) (float64, error) {
	in, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	outPath, err := outputPath(path, algo, decompress_)
	if err != nil {
		return 0, err
	}

	if !force && !toStdout {
		if _, err := os.Stat(outPath); err == nil {
			return 0, fmt.Errorf("%s already exists (use -f to overwrite)", outPath)
		}
	}

	var out io.Writer
	var outFile *os.File
	if toStdout {
		out = os.Stdout
	} else {
		outFile, err = os.CreateTemp(filepath.Dir(outPath), ".dxz-*")
		if err != nil {
			return 0, err
		}
		defer os.Remove(outFile.Name())
		out = outFile
	}

	var ratio float64
	if decompress_ {
		ratio, err = decompress(algo, in, out)
	} else {
		ratio, err = compress(algo, in, out, maxbits)
	}
	if err != nil {
		var cerr *dxcompress.Error
		if errors.As(err, &cerr) {
			return 0, fmt.Errorf("%s: %v", cerr.Result, cerr)
		}
		return 0, err
	}

	if outFile != nil {
		if !decompress_ && !force && algo == algorithmZ && ratio <= 0 {
			return ratio, fmt.Errorf("not compressed (ratio %.1f%%); use -f to keep anyway", ratio*100)
		}
		if err := outFile.Close(); err != nil {
			return ratio, err
		}
		if err := os.Rename(outFile.Name(), outPath); err != nil {
			return ratio, err
		}
		if !keep {
			if err := os.Remove(path); err != nil {
				return ratio, err
			}
		}
	}

	return ratio, nil
}

func outputPath(path string, algo algorithm, decompress_ bool) (string, error) {
	suffix := algo.suffix()
	if decompress_ {
		if !strings.HasSuffix(path, suffix) {
			return "", fmt.Errorf("input %s does not have the %s suffix", path, suffix)
		}
		return strings.TrimSuffix(path, suffix), nil
	}
	return path + suffix, nil
}

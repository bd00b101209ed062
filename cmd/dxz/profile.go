package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// profile is a named compression preset loaded from a small JSON document,
// e.g.:
//
//	{"maxbits": 16, "algorithm": "xz"}
//
// Using gjson here (rather than encoding/json) keeps the common case, a
// handful of optional scalar fields, to direct path lookups instead of a
// struct-and-Unmarshal round trip; see DESIGN.md for why this dependency
// was chosen over hand-rolling the equivalent with encoding/json.
type profile struct {
	maxbits   int
	algorithm string
}

// loadProfile reads path and extracts the fields a dxz run cares about,
// falling back to the supplied defaults for any field the document omits.
func loadProfile(path string, defaultMaxbits int, defaultAlgorithm string) (profile, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return profile{}, fmt.Errorf("reading profile %s: %w", path, err)
	}
	if !gjson.ValidBytes(doc) {
		return profile{}, fmt.Errorf("profile %s is not valid JSON", path)
	}

	p := profile{maxbits: defaultMaxbits, algorithm: defaultAlgorithm}

	if v := gjson.GetBytes(doc, "maxbits"); v.Exists() {
		p.maxbits = int(v.Int())
	}
	if v := gjson.GetBytes(doc, "algorithm"); v.Exists() {
		p.algorithm = v.String()
	}

	return p, nil
}

// Package cli holds CLI-side parsing helpers that sit between flag values
// and the size package.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"humansize/internal/size"
)

// ParseTableSpec reads a custom unit table from its flag/config form: a
// comma-separated list of SYMBOL=FACTOR pairs in ascending factor order,
// e.g. "X=1,KX=1000,MX=1e6". The first pair must be the base unit with
// factor 1. Table invariants are enforced by size.NewTable.
func ParseTableSpec(spec string) (size.Table, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return size.Table{}, fmt.Errorf("empty table spec")
	}

	var entries []size.SuffixEntry
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		sym, factor, ok := strings.Cut(pair, "=")
		if !ok {
			return size.Table{}, fmt.Errorf("invalid table entry %q (want SYMBOL=FACTOR)", pair)
		}
		sym = strings.TrimSpace(sym)
		f, err := strconv.ParseFloat(strings.TrimSpace(factor), 64)
		if err != nil {
			return size.Table{}, fmt.Errorf("invalid factor in table entry %q: %v", pair, err)
		}
		entries = append(entries, size.SuffixEntry{Symbol: sym, Factor: f})
	}

	t, err := size.NewTable(entries)
	if err != nil {
		return size.Table{}, fmt.Errorf("invalid table spec: %w", err)
	}
	return t, nil
}

// Package size converts between raw byte counts and human-readable size
// strings ("1.50 KiB", "1,50 KB") and back, over pluggable unit tables and
// locales. All types are immutable values; every operation is a pure
// function of its inputs, so converters and tables are safe to share across
// goroutines.
package size

import (
	"errors"
	"fmt"
	"strings"
)

// Standard selects one of the built-in unit systems.
type Standard int

const (
	// IEC is the binary system: KiB, MiB, ... (powers of 1024).
	IEC Standard = iota
	// SI is the decimal system: KB, MB, ... (powers of 1000).
	SI
)

// String returns the lowercase name used on the CLI and in config files.
func (s Standard) String() string {
	if s == SI {
		return "si"
	}
	return "iec"
}

// ParseStandard maps a config/CLI token to a Standard.
func ParseStandard(s string) (Standard, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "iec", "binary":
		return IEC, nil
	case "si", "decimal":
		return SI, nil
	}
	return IEC, fmt.Errorf("invalid standard: %q (valid: iec|si)", s)
}

// Table returns the built-in suffix table for the standard.
func (s Standard) Table() Table {
	if s == SI {
		return siTable
	}
	return iecTable
}

// SuffixEntry is one unit of a table: its symbol and how many bytes one of
// it holds.
type SuffixEntry struct {
	Symbol string
	Factor float64
}

// Table is an ordered, immutable set of suffix entries defining a unit
// system. The zero value is not usable; construct tables with NewTable or
// use a Standard's built-in.
type Table struct {
	entries []SuffixEntry
}

// NewTable validates entries and returns a table over a private copy of
// them. Entries must be non-empty, start with the base unit (factor 1),
// increase strictly in factor, and carry case-insensitively unique symbols.
func NewTable(entries []SuffixEntry) (Table, error) {
	if len(entries) == 0 {
		return Table{}, errors.New("suffix table must not be empty")
	}
	if entries[0].Factor != 1 {
		return Table{}, fmt.Errorf("first entry %q must be the base unit with factor 1", entries[0].Symbol)
	}
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.Symbol == "" {
			return Table{}, fmt.Errorf("entry %d has an empty symbol", i)
		}
		if i > 0 && e.Factor <= entries[i-1].Factor {
			return Table{}, fmt.Errorf("factor of %q (%v) must exceed factor of %q (%v)",
				e.Symbol, e.Factor, entries[i-1].Symbol, entries[i-1].Factor)
		}
		key := strings.ToLower(e.Symbol)
		if _, dup := seen[key]; dup {
			return Table{}, fmt.Errorf("duplicate symbol %q", e.Symbol)
		}
		seen[key] = struct{}{}
	}
	own := make([]SuffixEntry, len(entries))
	copy(own, entries)
	return Table{entries: own}, nil
}

// MustTable is NewTable for static tables known to be valid.
func MustTable(entries []SuffixEntry) Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Entries returns a copy of the table's entries in ascending factor order.
func (t Table) Entries() []SuffixEntry {
	out := make([]SuffixEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Base returns the table's base unit (the factor-1 entry).
func (t Table) Base() SuffixEntry {
	return t.entries[0]
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.entries)
}

func (t Table) valid() bool {
	return len(t.entries) > 0
}

var (
	iecTable = MustTable([]SuffixEntry{
		{"B", 1},
		{"KiB", 1 << 10},
		{"MiB", 1 << 20},
		{"GiB", 1 << 30},
		{"TiB", 1 << 40},
		{"PiB", 1 << 50},
	})

	siTable = MustTable([]SuffixEntry{
		{"B", 1},
		{"KB", 1e3},
		{"MB", 1e6},
		{"GB", 1e9},
		{"TB", 1e12},
		{"PB", 1e15},
	})
)

package size

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse reads a size string like "1.50 KiB" back into a byte count. The unit
// is the trailing run of letters in the input, matched case-insensitively
// against the table as a whole token, so "1KB" resolves to KB rather than B
// and "1 XB" is an unknown unit rather than a malformed count of "X" bytes.
// The numeric part is read under the converter's locale and scaled by the
// unit's factor; the product is truncated toward zero to a whole byte count.
//
// A bare number with no unit symbol does not match any entry and fails with
// ErrUnknownUnit.
func (c *Converter) Parse(input string) (int64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, ErrInvalidInput
	}

	unit := trailingUnit(trimmed)
	entry, ok := c.lookupSymbol(unit)
	if !ok {
		return 0, fmt.Errorf("%w in %q", ErrUnknownUnit, trimmed)
	}

	num := strings.TrimSpace(trimmed[:len(trimmed)-len(unit)])
	if num == "" {
		return 0, fmt.Errorf("%w: no numeric value in %q", ErrMalformedNumber, trimmed)
	}
	canonical, err := c.locale.normalize(num)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, num)
	}
	v, err := strconv.ParseFloat(canonical, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, num)
	}

	return int64(v * entry.Factor), nil
}

// TryParse is Parse without the error: it reports failure of any kind as
// (0, false).
func (c *Converter) TryParse(input string) (int64, bool) {
	n, err := c.Parse(input)
	if err != nil {
		return 0, false
	}
	return n, true
}

// lookupSymbol returns the table entry whose symbol equals the unit token
// case-insensitively. An empty token matches nothing.
func (c *Converter) lookupSymbol(unit string) (SuffixEntry, bool) {
	if unit == "" {
		return SuffixEntry{}, false
	}
	for _, e := range c.table.entries {
		if strings.EqualFold(unit, e.Symbol) {
			return e, true
		}
	}
	return SuffixEntry{}, false
}

// trailingUnit returns the maximal run of letters at the end of s. The run
// is the whole unit token: "1 XB" yields "XB", never its "B" tail, and a
// bare number yields "".
func trailingUnit(s string) string {
	i := len(s)
	for i > 0 {
		r, n := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsLetter(r) {
			break
		}
		i -= n
	}
	return s[i:]
}

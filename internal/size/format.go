package size

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Format renders a non-negative byte count as "<number> <symbol>", choosing
// the largest unit whose factor does not exceed the count. Values past the
// table's largest unit stay in that unit, so the quotient may grow
// arbitrarily large. Zero renders as "0 <base>" with no fractional digits.
//
// The unit is chosen from the raw byte count before rounding, so a count
// just under a unit boundary renders in the smaller unit even when rounding
// carries it up to the boundary (1023.9999 GiB rather than 1.00 TiB).
func (c *Converter) Format(bytes int64) (string, error) {
	if bytes < 0 {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, bytes)
	}
	if bytes == 0 {
		return "0 " + c.table.Base().Symbol, nil
	}

	m := 0
	for i, e := range c.table.entries {
		if float64(bytes) < e.Factor {
			break
		}
		m = i
	}
	entry := c.table.entries[m]

	quotient := float64(bytes) / entry.Factor
	num := strconv.FormatFloat(quotient, 'f', c.decimals, 64)
	return c.locale.render(num) + " " + entry.Symbol, nil
}

// FormatAligned renders like Format and left-pads the result with pad up to
// width characters. Width counts runes, not bytes; 10 is the conventional
// width, fitting four integer digits plus two decimals and any built-in
// symbol. A width at or below the natural length leaves the output unpadded.
func (c *Converter) FormatAligned(bytes int64, width int, pad rune) (string, error) {
	s, err := c.Format(bytes)
	if err != nil {
		return "", err
	}
	if pad == 0 {
		pad = ' '
	}
	if n := utf8.RuneCountInString(s); n < width {
		s = strings.Repeat(string(pad), width-n) + s
	}
	return s, nil
}

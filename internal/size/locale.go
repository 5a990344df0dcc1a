package size

import (
	"fmt"
	"strings"
)

// Locale holds the numeric separators used when rendering and parsing
// quantities. The zero value is not usable; take one of the built-ins or
// fill both roles explicitly (Grouping may stay empty).
type Locale struct {
	// Decimal separates the integer and fractional parts, e.g. "." or ",".
	Decimal string
	// Grouping separates thousands groups on input. Empty means the locale
	// accepts no grouping. Formatting never emits grouping separators.
	Grouping string
}

// Built-in locales. Invariant is the default everywhere: a decimal point and
// no grouping, independent of the host environment.
var (
	Invariant = Locale{Decimal: "."}
	German    = Locale{Decimal: ",", Grouping: "."}
	French    = Locale{Decimal: ",", Grouping: " "}
)

// ParseLocale maps a config/CLI token to a built-in locale.
func ParseLocale(tag string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "", "invariant", "en":
		return Invariant, nil
	case "de":
		return German, nil
	case "fr":
		return French, nil
	}
	return Locale{}, fmt.Errorf("unknown locale: %q (valid: invariant|en|de|fr)", tag)
}

// String returns the tag understood by ParseLocale.
func (l Locale) String() string {
	switch l {
	case German:
		return "de"
	case French:
		return "fr"
	}
	return "invariant"
}

// render swaps the canonical decimal point for the locale's separator.
// The input comes from strconv and is known to contain at most one ".".
func (l Locale) render(num string) string {
	if l.Decimal == "." || l.Decimal == "" {
		return num
	}
	return strings.Replace(num, ".", l.Decimal, 1)
}

// normalize rewrites a localized numeric string into the canonical form
// accepted by strconv.ParseFloat: grouping separators dropped, the locale's
// decimal separator mapped to ".". A "." that is neither the locale's
// decimal nor its grouping separator is rejected so that "1.5" cannot pass
// for one-and-a-half under a comma-decimal locale.
func (l Locale) normalize(num string) (string, error) {
	if l.Grouping != "" {
		num = strings.ReplaceAll(num, l.Grouping, "")
	}
	if l.Decimal != "." && l.Decimal != "" {
		if strings.Contains(num, ".") {
			return "", fmt.Errorf("unexpected %q in %q", ".", num)
		}
		num = strings.ReplaceAll(num, l.Decimal, ".")
	}
	return num, nil
}

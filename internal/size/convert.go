package size

// Converter renders and parses byte quantities under one fixed choice of
// decimals, unit table, and locale. Converters are immutable after New and
// safe for concurrent use.
type Converter struct {
	decimals int
	table    Table
	locale   Locale
}

// Option configures a Converter.
type Option func(*Converter)

// WithDecimals sets the number of fractional digits Format renders.
// Negative values are treated as zero.
func WithDecimals(n int) Option {
	return func(c *Converter) {
		if n < 0 {
			n = 0
		}
		c.decimals = n
	}
}

// WithStandard selects one of the built-in unit tables.
func WithStandard(s Standard) Option {
	return func(c *Converter) {
		c.table = s.Table()
	}
}

// WithTable installs a custom unit table, overriding any standard. A zero
// Table (one not built by NewTable) is ignored and the converter keeps its
// current table.
func WithTable(t Table) Option {
	return func(c *Converter) {
		if t.valid() {
			c.table = t
		}
	}
}

// WithLocale sets the numeric separators for both directions. A locale
// without a decimal separator (the zero Locale) is ignored and the
// converter keeps its current locale.
func WithLocale(l Locale) Option {
	return func(c *Converter) {
		if l.Decimal != "" {
			c.locale = l
		}
	}
}

// New constructs a Converter. Defaults: 2 decimals, IEC units, invariant
// locale.
func New(opts ...Option) *Converter {
	c := &Converter{
		decimals: 2,
		table:    iecTable,
		locale:   Invariant,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

var defaultConverter = New()

// Format renders bytes with the package defaults (2 decimals, IEC,
// invariant locale).
func Format(bytes int64) (string, error) {
	return defaultConverter.Format(bytes)
}

// FormatAligned renders bytes with the package defaults, left-padded to
// width with spaces. Pass 10 for the conventional column width.
func FormatAligned(bytes int64, width int) (string, error) {
	return defaultConverter.FormatAligned(bytes, width, ' ')
}

// Parse reads a size string with the package defaults.
func Parse(input string) (int64, error) {
	return defaultConverter.Parse(input)
}

// TryParse reads a size string with the package defaults, reporting failure
// through the second result instead of an error.
func TryParse(input string) (int64, bool) {
	return defaultConverter.TryParse(input)
}

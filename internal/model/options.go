// Package model holds the option types shared by the CLI and the TUI.
package model

import "humansize/internal/size"

// Options is the resolved conversion configuration assembled from flags,
// environment, and config file.
type Options struct {
	Decimals int
	Standard size.Standard
	Locale   size.Locale

	// Table is a caller-supplied unit table; it overrides Standard when
	// HasTable is set.
	Table    size.Table
	HasTable bool
}

// ConverterOptions maps the resolved options onto size.Converter options.
func (o Options) ConverterOptions() []size.Option {
	opts := []size.Option{
		size.WithDecimals(o.Decimals),
		size.WithStandard(o.Standard),
		size.WithLocale(o.Locale),
	}
	if o.HasTable {
		opts = append(opts, size.WithTable(o.Table))
	}
	return opts
}

// Converter builds a converter for the resolved options.
func (o Options) Converter() *size.Converter {
	return size.New(o.ConverterOptions()...)
}

package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"humansize/internal/model"
	"humansize/internal/size"
)

func TestNextStandardCycles(t *testing.T) {
	m := NewModel(context.Background(), model.Options{Standard: size.IEC, Locale: size.Invariant})
	assert.Equal(t, size.SI, m.nextStandard())

	m.opts.Standard = size.SI
	assert.Equal(t, size.IEC, m.nextStandard())
}

func TestNextLocaleCycles(t *testing.T) {
	m := NewModel(context.Background(), model.Options{Standard: size.IEC, Locale: size.Invariant})

	seen := []size.Locale{m.opts.Locale}
	for i := 0; i < 3; i++ {
		m.opts.Locale = m.nextLocale()
		seen = append(seen, m.opts.Locale)
	}
	assert.Equal(t, []size.Locale{size.Invariant, size.German, size.French, size.Invariant}, seen)
}

func TestFormattedLinesUsesCustomTable(t *testing.T) {
	table := size.MustTable([]size.SuffixEntry{{Symbol: "X", Factor: 1}, {Symbol: "KX", Factor: 1000}})
	m := NewModel(context.Background(), model.Options{
		Decimals: 2,
		Standard: size.IEC,
		Locale:   size.Invariant,
		Table:    table,
		HasTable: true,
	})

	lines := m.formattedLines(5000)
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "5.00 KX")
}

func TestFormattedLinesShowsBothStandards(t *testing.T) {
	m := NewModel(context.Background(), model.Options{Decimals: 2, Standard: size.IEC, Locale: size.Invariant})

	lines := m.formattedLines(1500)
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "1.46 KiB")
	assert.Contains(t, lines[1], "1.50 KB")
}

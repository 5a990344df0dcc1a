package ui

import (
	"fmt"
	"strconv"
	"strings"

	"humansize/internal/size"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewResult())
	return b.String()
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("humansize — byte size converter")
	sub := m.styles.Subtitle.Render(fmt.Sprintf(
		"standard: %s • locale: %s • decimals: %d • tab/ctrl+l/↑↓ to change • esc: quit",
		m.standardLabel(), m.opts.Locale, m.opts.Decimals))
	return title + "\n" + sub
}

func (m Model) standardLabel() string {
	if m.opts.HasTable {
		return "custom"
	}
	return m.opts.Standard.String()
}

func (m Model) viewResult() string {
	in := strings.TrimSpace(m.input.Value())
	if in == "" {
		return m.styles.Faint.Render("Type a byte count or a size string.")
	}

	var lines []string

	if bytes, err := strconv.ParseInt(in, 10, 64); err == nil {
		lines = append(lines, m.formattedLines(bytes)...)
	} else if n, ok := m.opts.Converter().TryParse(in); ok {
		lines = append(lines,
			fmt.Sprintf("%s %s", m.styles.Label.Render("bytes:"), m.styles.Value.Render(strconv.FormatInt(n, 10))))
		lines = append(lines, m.formattedLines(n)...)
	} else {
		return m.styles.Error.Render("Not a byte count or a recognizable size under the current units/locale.")
	}

	return m.styles.Box.Render(strings.Join(lines, "\n"))
}

// formattedLines renders one line per unit system: the custom table when one
// is installed, otherwise both built-ins.
func (m Model) formattedLines(bytes int64) []string {
	type row struct {
		label string
		opts  []size.Option
	}

	var rows []row
	common := []size.Option{
		size.WithDecimals(m.opts.Decimals),
		size.WithLocale(m.opts.Locale),
	}
	if m.opts.HasTable {
		rows = []row{{"custom:", append(common, size.WithTable(m.opts.Table))}}
	} else {
		rows = []row{
			{"iec:", append(common, size.WithStandard(size.IEC))},
			{"si: ", append(common, size.WithStandard(size.SI))},
		}
	}

	var lines []string
	for _, r := range rows {
		s, err := size.New(r.opts...).Format(bytes)
		if err != nil {
			lines = append(lines, fmt.Sprintf("%s %s",
				m.styles.Label.Render(r.label), m.styles.Error.Render(err.Error())))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s",
			m.styles.Label.Render(r.label), m.styles.Unit.Render(s)))
	}
	return lines
}

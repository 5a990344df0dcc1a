package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"humansize/internal/model"
	"humansize/internal/size"
)

// Model is the interactive converter: one input line that accepts either a
// raw byte count or a size string, converted live in both directions.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	opts  model.Options
	input textinput.Model

	width, height int
	styles        Styles
}

func NewModel(ctx context.Context, opts model.Options) Model {
	c, cancel := context.WithCancel(ctx)

	ti := textinput.New()
	ti.Placeholder = `1536 or "1.50 KiB"`
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()

	return Model{
		ctx:    c,
		cancel: cancel,
		opts:   opts,
		input:  ti,
		styles: defaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.cancel()
			return m, tea.Quit
		case "tab":
			// The standard only matters while no custom table is installed.
			if !m.opts.HasTable {
				m.opts.Standard = m.nextStandard()
			}
			return m, nil
		case "ctrl+l":
			m.opts.Locale = m.nextLocale()
			return m, nil
		case "up":
			m.opts.Decimals++
			return m, nil
		case "down":
			if m.opts.Decimals > 0 {
				m.opts.Decimals--
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) nextStandard() size.Standard {
	if m.opts.Standard == size.IEC {
		return size.SI
	}
	return size.IEC
}

func (m Model) nextLocale() size.Locale {
	switch m.opts.Locale {
	case size.Invariant:
		return size.German
	case size.German:
		return size.French
	default:
		return size.Invariant
	}
}

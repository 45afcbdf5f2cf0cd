package pillars

import (
	"errors"
	"io"

	"github.com/bnema/faulkner-machine/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	frame  domain.Frame
	opts   RenderOptions
	styles styles
	output string
}

func newModel(frame domain.Frame, opts RenderOptions) model {
	opts = opts.withDefaults()
	return model{
		frame:  frame,
		opts:   opts,
		styles: newStyles(opts.ColumnWidth),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.frame, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws a single frame to a string.
func Render(frame domain.Frame, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(frame, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

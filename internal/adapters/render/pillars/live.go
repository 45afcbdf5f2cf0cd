package pillars

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/faulkner-machine/internal/domain"
	"github.com/bnema/faulkner-machine/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
)

var ErrInterrupted = errors.New("interrupted by user")

type frameMsg domain.Frame

type liveModel struct {
	spinner     spinner.Model
	frame       domain.Frame
	opts        RenderOptions
	styles      styles
	started     bool
	done        bool
	interrupted bool
}

func newLiveModel(opts RenderOptions) liveModel {
	opts = opts.withDefaults()
	st := newStyles(opts.ColumnWidth)

	return liveModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(st.spinner),
		),
		opts:   opts,
		styles: st,
	}
}

func (m liveModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = domain.Frame(msg)
		m.started = true
		if m.frame.Done {
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m liveModel) View() string {
	if !m.started {
		return fmt.Sprintf("%s the machine is listening...", m.spinner.View())
	}

	view := renderView(m.frame, m.opts, m.styles)
	if m.done {
		return view + "\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		view,
		fmt.Sprintf("%s %s is speaking", m.spinner.View(), m.frame.Speaker),
	)
}

type programSink struct {
	program *tea.Program
}

func (s programSink) Emit(ctx context.Context, frame domain.Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.program.Send(frameMsg(frame))
	return nil
}

// Live repaints the pillars in place as frames arrive.
type Live struct {
	output io.Writer
	input  io.Reader
	opts   RenderOptions
}

func NewLive(output io.Writer, input io.Reader, opts RenderOptions) *Live {
	return &Live{output: output, input: input, opts: opts}
}

// Run starts the terminal program and drives produce against it until the
// producer finishes, the user quits or ctx ends. It returns the last frame
// the program displayed.
func (l *Live) Run(ctx context.Context, produce func(context.Context, ports.FrameSink) error) (domain.Frame, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		newLiveModel(l.opts),
		tea.WithInput(l.input),
		tea.WithOutput(l.output),
		tea.WithContext(runCtx),
	)

	var final liveModel
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		err := produce(gctx, programSink{program: p})
		if err != nil && !errors.Is(err, context.Canceled) {
			p.Quit()
			return err
		}
		return nil
	})

	g.Go(func() error {
		defer cancel()

		finalModel, err := p.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run live display: %w", err)
		}

		model, ok := finalModel.(liveModel)
		if !ok {
			if err != nil {
				return nil
			}
			return ErrUnexpectedRenderModel
		}
		final = model
		return nil
	})

	if err := g.Wait(); err != nil {
		return final.frame, err
	}
	if final.interrupted {
		return final.frame, ErrInterrupted
	}
	if err := ctx.Err(); err != nil {
		return final.frame, err
	}

	return final.frame, nil
}

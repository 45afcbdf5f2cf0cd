package pillars

import (
	"fmt"
	"strings"

	"github.com/bnema/faulkner-machine/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-wordwrap"
)

const (
	DefaultColumnWidth = 28
	columnGutter       = 3
	cappedMarker       = "[capped]"
	doneFooter         = "[done] pillars halted when capped, ground halted when capped."
)

type RenderOptions struct {
	ColumnWidth int
	PillarRows  int
	GroundRows  int
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.ColumnWidth <= 0 {
		o.ColumnWidth = DefaultColumnWidth
	}
	return o
}

func (o RenderOptions) groundWidth() int {
	return o.ColumnWidth*domain.PersonaCount + columnGutter*(domain.PersonaCount-1)
}

func renderView(frame domain.Frame, opts RenderOptions, s styles) string {
	opts = opts.withDefaults()

	sections := []string{
		s.title.Render("faulkner machine"),
		s.meta.Render(fmt.Sprintf("cycle: %d  depth: %d", frame.Cycle, frame.Depth)),
		renderColumns(frame, opts, s),
		s.groundHdr.Render(headerLabel("GROUND", frame.Ground.Saturated)),
		renderGround(frame.Ground, opts, s),
	}

	if frame.Done {
		sections = append(sections, s.footer.Render(doneFooter))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderColumns(frame domain.Frame, opts RenderOptions, s styles) string {
	columns := make([]string, 0, domain.PersonaCount)
	for i, persona := range domain.Personas() {
		pillar := frame.Pillars[persona]

		header := s.header.Render(headerLabel(persona.String(), pillar.Saturated))
		if pillar.Saturated {
			header = s.capped.Render(header)
		}

		body := renderPillar(pillar, frame.Line, persona == frame.Speaker && !frame.Done, opts, s)

		cell := s.cell
		if i == domain.PersonaCount-1 {
			cell = s.lastCell
		}
		columns = append(columns, cell.Render(lipgloss.JoinVertical(lipgloss.Left, header, body)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func headerLabel(name string, saturated bool) string {
	if saturated {
		return name + " " + cappedMarker
	}
	return name
}

// renderPillar lays out a pillar newest line first, so it reads as
// growing upward from its base.
func renderPillar(pillar domain.Stream, freshLine string, speaking bool, opts RenderOptions, s styles) string {
	rows := make([]string, 0, len(pillar.Lines))
	for i := len(pillar.Lines) - 1; i >= 0; i-- {
		style := s.line
		if speaking && i == len(pillar.Lines)-1 && pillar.Lines[i] == freshLine {
			style = s.fresh
		}
		for _, wrapped := range wrap(pillar.Lines[i], opts.ColumnWidth-1) {
			rows = append(rows, style.Render(wrapped))
		}
	}

	if opts.PillarRows > 0 && len(rows) > opts.PillarRows {
		rows = rows[:opts.PillarRows]
	}

	return strings.Join(rows, "\n")
}

func renderGround(ground domain.Stream, opts RenderOptions, s styles) string {
	rows := wrap(ground.Joined(), opts.groundWidth())
	if opts.GroundRows > 0 && len(rows) > opts.GroundRows {
		rows = rows[len(rows)-opts.GroundRows:]
	}

	return s.ground.Render(strings.Join(rows, "\n"))
}

func wrap(text string, width int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(wordwrap.WrapString(text, uint(width)), "\n")
}

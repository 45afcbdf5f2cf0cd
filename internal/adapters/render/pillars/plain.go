package pillars

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/faulkner-machine/internal/domain"
	"github.com/bnema/faulkner-machine/internal/ports"
)

// PlainSink writes frames without a live display. Unless EveryFrame is
// set only the final frame is written.
type PlainSink struct {
	output     io.Writer
	opts       RenderOptions
	asJSON     bool
	everyFrame bool
}

var _ ports.FrameSink = (*PlainSink)(nil)

func NewPlainSink(output io.Writer, opts RenderOptions, asJSON, everyFrame bool) *PlainSink {
	return &PlainSink{output: output, opts: opts, asJSON: asJSON, everyFrame: everyFrame}
}

type jsonFrame struct {
	Cycle   int                              `json:"cycle"`
	Depth   int                              `json:"depth"`
	Speaker domain.Persona                   `json:"speaker"`
	Line    string                           `json:"line,omitempty"`
	Done    bool                             `json:"done"`
	Pillars map[domain.Persona]domain.Stream `json:"pillars"`
	Ground  domain.Stream                    `json:"ground"`
}

func toJSONFrame(frame domain.Frame) jsonFrame {
	pillars := make(map[domain.Persona]domain.Stream, domain.PersonaCount)
	for _, persona := range domain.Personas() {
		pillars[persona] = frame.Pillars[persona]
	}

	return jsonFrame{
		Cycle:   frame.Cycle,
		Depth:   frame.Depth,
		Speaker: frame.Speaker,
		Line:    frame.Line,
		Done:    frame.Done,
		Pillars: pillars,
		Ground:  frame.Ground,
	}
}

func (s *PlainSink) Emit(ctx context.Context, frame domain.Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !frame.Done && !s.everyFrame {
		return nil
	}

	if s.asJSON {
		enc := json.NewEncoder(s.output)
		enc.SetIndent("", "  ")
		return enc.Encode(toJSONFrame(frame))
	}

	rendered, err := Render(frame, s.opts)
	if err != nil {
		return fmt.Errorf("render frame: %w", err)
	}

	_, err = fmt.Fprintln(s.output, rendered)
	return err
}

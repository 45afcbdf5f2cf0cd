package ports

import (
	"context"

	"github.com/bnema/faulkner-machine/internal/domain"
)

type FrameSink interface {
	Emit(ctx context.Context, frame domain.Frame) error
}

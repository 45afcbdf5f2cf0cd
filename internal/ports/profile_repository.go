package ports

import (
	"context"

	"github.com/bnema/faulkner-machine/internal/domain"
)

type ProfileRepository interface {
	Load(ctx context.Context) (domain.StyleProfiles, error)
	Save(ctx context.Context, profiles domain.StyleProfiles, overwrite bool) error
}

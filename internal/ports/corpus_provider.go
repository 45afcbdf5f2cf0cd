package ports

import (
	"context"

	"github.com/bnema/faulkner-machine/internal/domain"
)

// CorpusProvider never fails: an unreadable source yields the fallback corpus.
type CorpusProvider interface {
	Load(ctx context.Context) domain.Corpus
}

package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bnema/faulkner-machine/internal/domain"
	"github.com/bnema/faulkner-machine/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

const maxFragmentBytes = 1 << 20

type Provider struct {
	path   string
	logger *zap.Logger
}

var _ ports.CorpusProvider = (*Provider)(nil)

func NewProvider(path string, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Provider{path: strings.TrimSpace(path), logger: logger}
}

// Load never fails: a missing, unreadable or empty file yields the
// built-in fallback corpus.
func (p *Provider) Load(ctx context.Context) domain.Corpus {
	if p.path == "" {
		p.logger.Debug("no corpus path configured, using fallback corpus")
		return domain.FallbackCorpus()
	}

	corpus, err := p.read(ctx)
	if err != nil {
		p.logger.Warn("corpus unavailable, using fallback corpus", zap.String("path", p.path), zap.Error(err))
		return domain.FallbackCorpus()
	}
	if len(corpus) == 0 {
		p.logger.Warn("corpus file has no fragments, using fallback corpus", zap.String("path", p.path))
		return domain.FallbackCorpus()
	}

	p.logger.Debug("corpus loaded", zap.String("path", p.path), zap.Int("fragments", len(corpus)))
	return corpus
}

func (p *Provider) read(ctx context.Context) (domain.Corpus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse returns the trimmed, NFC-normalised, non-empty lines of r in order.
func Parse(r io.Reader) (domain.Corpus, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFragmentBytes)

	var corpus domain.Corpus
	for scanner.Scan() {
		line := strings.TrimSpace(norm.NFC.String(scanner.Text()))
		if line == "" {
			continue
		}
		corpus = append(corpus, line)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("corpus fragment exceeds %d bytes: %w", maxFragmentBytes, err)
		}
		return nil, fmt.Errorf("scan corpus: %w", err)
	}

	return corpus, nil
}

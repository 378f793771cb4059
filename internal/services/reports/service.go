package reports

import (
	"context"
	"fmt"

	"phishguard/internal/domain"
	"phishguard/internal/ports"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Service reads aggregates and history from the analysis store.
type Service struct {
	results ports.AnalysisRepository
}

func New(results ports.AnalysisRepository) *Service { return &Service{results: results} }

func (s *Service) Statistics(ctx context.Context) (domain.Statistics, error) {
	stats, err := s.results.Statistics(ctx)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("load statistics: %w", err)
	}
	return stats, nil
}

// Recent lists stored results, newest first. The limit is clamped to
// [1, MaxLimit] with DefaultLimit when unset.
func (s *Service) Recent(ctx context.Context, f domain.AnalysisFilter) ([]domain.AnalysisResult, error) {
	if f.Verdict != "" && !f.Verdict.Valid() {
		return nil, domain.NewInputError(string(f.Verdict), "unknown verdict", nil)
	}
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultLimit
	case f.Limit > MaxLimit:
		f.Limit = MaxLimit
	}
	out, err := s.results.Recent(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load recent analyses: %w", err)
	}
	return out, nil
}

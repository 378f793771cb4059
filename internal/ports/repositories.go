package ports

import (
	"context"

	"phishguard/internal/domain"
)

// AnalysisRepository stores analysis results keyed by URL (last write wins).
type AnalysisRepository interface {
	Upsert(ctx context.Context, result domain.AnalysisResult) error
	Statistics(ctx context.Context) (domain.Statistics, error)
	Recent(ctx context.Context, filter domain.AnalysisFilter) ([]domain.AnalysisResult, error)
}

// BlacklistRepository stores blacklisted domains with insert-if-absent semantics.
type BlacklistRepository interface {
	Insert(ctx context.Context, entry domain.BlacklistEntry) (inserted bool, err error)
	List(ctx context.Context) ([]domain.BlacklistEntry, error)
}

package ports

import (
	"context"

	"phishguard/internal/domain"
)

// Analyzer scores URLs.
type Analyzer interface {
	Analyze(ctx context.Context, rawURL string) (domain.AnalysisResult, error)
}

// Blacklist accepts user-reported domains.
type Blacklist interface {
	AddDomain(ctx context.Context, domain, reason string) error
}

// Reports exposes aggregates and history over stored analyses.
type Reports interface {
	Statistics(ctx context.Context) (domain.Statistics, error)
	Recent(ctx context.Context, filter domain.AnalysisFilter) ([]domain.AnalysisResult, error)
}

// PageFetcher retrieves a page body for content inspection.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (body string, err error)
}

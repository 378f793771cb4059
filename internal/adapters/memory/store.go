// Package memory is a process-local store satisfying the repository ports.
// It backs local runs without DATABASE_URL and the service tests.
package memory

import (
	"context"
	"math"
	"slices"
	"sort"
	"sync"

	"phishguard/internal/domain"
)

type Store struct {
	mu        sync.RWMutex
	analyses  map[string]domain.AnalysisResult
	blacklist map[string]domain.BlacklistEntry
	order     []string // blacklist insertion order
}

func New() *Store {
	return &Store{
		analyses:  make(map[string]domain.AnalysisResult),
		blacklist: make(map[string]domain.BlacklistEntry),
	}
}

// AnalysisRepository

func (s *Store) Upsert(ctx context.Context, r domain.AnalysisResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.DetectionMethods = cloneNonNil(r.DetectionMethods)
	r.Reasons = cloneNonNil(r.Reasons)
	s.mu.Lock()
	s.analyses[r.URL] = r
	s.mu.Unlock()
	return nil
}

func (s *Store) Statistics(ctx context.Context) (domain.Statistics, error) {
	if err := ctx.Err(); err != nil {
		return domain.Statistics{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out domain.Statistics
	sum := 0
	for _, r := range s.analyses {
		out.TotalAnalyzed++
		if r.Verdict == domain.VerdictPhishing {
			out.PhishingDetected++
		}
		sum += r.RiskScore
	}
	if out.TotalAnalyzed > 0 {
		out.AvgRiskScore = math.Round(float64(sum)/float64(out.TotalAnalyzed)*100) / 100
	}
	return out, nil
}

func (s *Store) Recent(ctx context.Context, f domain.AnalysisFilter) ([]domain.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := make([]domain.AnalysisResult, 0, len(s.analyses))
	for _, r := range s.analyses {
		if f.Verdict != "" && r.Verdict != f.Verdict {
			continue
		}
		out = append(out, r)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].URL < out[j].URL
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// BlacklistRepository

func (s *Store) Insert(ctx context.Context, e domain.BlacklistEntry) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blacklist[e.Domain]; ok {
		return false, nil
	}
	s.blacklist[e.Domain] = e
	s.order = append(s.order, e.Domain)
	return true, nil
}

func (s *Store) List(ctx context.Context) ([]domain.BlacklistEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.BlacklistEntry, 0, len(s.order))
	for _, d := range s.order {
		out = append(out, s.blacklist[d])
	}
	return out, nil
}

// cloneNonNil copies s so callers cannot alias stored rows; empty lists
// stay empty rather than nil, matching what the Postgres adapter returns.
func cloneNonNil[T any](s []T) []T {
	if len(s) == 0 {
		return []T{}
	}
	return slices.Clone(s)
}

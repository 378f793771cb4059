package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phishguard/internal/domain"
)

func TestUpsertOverwritesByURL(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Upsert(ctx, domain.AnalysisResult{URL: "http://a.test/", RiskScore: 90, Verdict: domain.VerdictPhishing}))
	require.NoError(t, s.Upsert(ctx, domain.AnalysisResult{URL: "http://a.test/", RiskScore: 10, Verdict: domain.VerdictClean}))

	stats, err := s.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Statistics{TotalAnalyzed: 1, PhishingDetected: 0, AvgRiskScore: 10}, stats)
}

func TestStatisticsRoundsAverage(t *testing.T) {
	ctx := context.Background()
	s := New()
	for i, score := range []int{10, 20, 70} {
		v := domain.VerdictClean
		if score >= 60 {
			v = domain.VerdictPhishing
		}
		require.NoError(t, s.Upsert(ctx, domain.AnalysisResult{URL: string(rune('a'+i)), RiskScore: score, Verdict: v}))
	}
	stats, err := s.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalAnalyzed)
	assert.Equal(t, 1, stats.PhishingDetected)
	assert.Equal(t, 33.33, stats.AvgRiskScore)
}

func TestStatisticsEmpty(t *testing.T) {
	stats, err := New().Statistics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats)
}

func TestRecentOrdersAndFilters(t *testing.T) {
	ctx := context.Background()
	s := New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Upsert(ctx, domain.AnalysisResult{URL: "old", Timestamp: base, Verdict: domain.VerdictPhishing}))
	require.NoError(t, s.Upsert(ctx, domain.AnalysisResult{URL: "new", Timestamp: base.Add(time.Hour), Verdict: domain.VerdictPhishing}))
	require.NoError(t, s.Upsert(ctx, domain.AnalysisResult{URL: "clean", Timestamp: base.Add(2 * time.Hour), Verdict: domain.VerdictClean}))

	all, err := s.Recent(ctx, domain.AnalysisFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "clean", all[0].URL)

	phish, err := s.Recent(ctx, domain.AnalysisFilter{Verdict: domain.VerdictPhishing, Limit: 1})
	require.NoError(t, err)
	require.Len(t, phish, 1)
	assert.Equal(t, "new", phish[0].URL)
}

func TestInsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	s := New()

	ok, err := s.Insert(ctx, domain.BlacklistEntry{Domain: "evil.test", Reason: "first"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Insert(ctx, domain.BlacklistEntry{Domain: "evil.test", Reason: "second"})
	require.NoError(t, err)
	assert.False(t, ok)

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "first", entries[0].Reason)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New()
	assert.ErrorIs(t, s.Upsert(ctx, domain.AnalysisResult{URL: "x"}), context.Canceled)
	_, err := s.Insert(ctx, domain.BlacklistEntry{Domain: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmptyListsStayEmpty(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Upsert(ctx, domain.AnalysisResult{URL: "http://clean.test/", Verdict: domain.VerdictClean}))

	got, err := s.Recent(ctx, domain.AnalysisFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotNil(t, got[0].DetectionMethods)
	assert.NotNil(t, got[0].Reasons)
}

func TestUpsertCopiesSlices(t *testing.T) {
	ctx := context.Background()
	s := New()
	reasons := []string{"Very long URL"}
	require.NoError(t, s.Upsert(ctx, domain.AnalysisResult{URL: "http://a.test/", Reasons: reasons}))
	reasons[0] = "changed"

	got, err := s.Recent(ctx, domain.AnalysisFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Very long URL"}, got[0].Reasons)
}

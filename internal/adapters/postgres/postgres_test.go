package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phishguard/internal/domain"
	"phishguard/internal/ports"
)

var (
	_ ports.AnalysisRepository  = (*DB)(nil)
	_ ports.BlacklistRepository = (*DB)(nil)
)

// testDB connects to TEST_DATABASE_URL and resets the schema, or skips.
func testDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx))
	_, err = db.Pool.Exec(ctx, `TRUNCATE url_analyses, blacklist`)
	require.NoError(t, err)
	return db
}

func TestConnectRejectsBadURL(t *testing.T) {
	_, err := Connect(context.Background(), "::not a dsn::")
	assert.Error(t, err)
}

func TestUpsertLastWriteWins(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	ts := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	first := domain.AnalysisResult{
		URL: "http://a.test/", Domain: "a.test", Timestamp: ts, RiskScore: 70, Confidence: 40,
		DetectionMethods: []domain.DetectionMethod{domain.MethodHeuristic},
		Reasons:          []string{"Suspicious pattern detected"},
		Verdict:          domain.VerdictPhishing,
	}
	require.NoError(t, db.Upsert(ctx, first))
	second := first
	second.RiskScore = 10
	second.Verdict = domain.VerdictClean
	second.DetectionMethods = nil
	second.Reasons = nil
	second.Timestamp = ts.Add(time.Minute)
	require.NoError(t, db.Upsert(ctx, second))

	stats, err := db.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Statistics{TotalAnalyzed: 1, PhishingDetected: 0, AvgRiskScore: 10}, stats)

	got, err := db.Recent(ctx, domain.AnalysisFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.VerdictClean, got[0].Verdict)
	assert.Empty(t, got[0].DetectionMethods)
	assert.NotNil(t, got[0].Reasons)
	assert.True(t, second.Timestamp.Equal(got[0].Timestamp))
}

func TestStatisticsEmpty(t *testing.T) {
	db := testDB(t)
	stats, err := db.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Statistics{}, stats)
}

func TestRecentFilterAndOrder(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	for i, v := range []domain.Verdict{domain.VerdictClean, domain.VerdictPhishing, domain.VerdictPhishing} {
		require.NoError(t, db.Upsert(ctx, domain.AnalysisResult{
			URL: "http://x.test/" + string(rune('a'+i)), Domain: "x.test",
			Timestamp: base.Add(time.Duration(i) * time.Minute), Verdict: v,
		}))
	}

	got, err := db.Recent(ctx, domain.AnalysisFilter{Verdict: domain.VerdictPhishing, Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "http://x.test/c", got[0].URL)
	assert.Equal(t, "http://x.test/b", got[1].URL)

	got, err = db.Recent(ctx, domain.AnalysisFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "http://x.test/c", got[0].URL)
}

func TestBlacklistInsertIfAbsent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	e := domain.BlacklistEntry{Domain: "evil.test", Reason: "User reported", AddedDate: time.Now().UTC()}

	inserted, err := db.Insert(ctx, e)
	require.NoError(t, err)
	assert.True(t, inserted)

	e.Reason = "second"
	inserted, err = db.Insert(ctx, e)
	require.NoError(t, err)
	assert.False(t, inserted)

	list, err := db.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "User reported", list[0].Reason)
}

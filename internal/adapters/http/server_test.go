package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phishguard/internal/adapters/memory"
	"phishguard/internal/api"
	"phishguard/internal/domain"
	"phishguard/internal/metrics"
	"phishguard/internal/services/blacklist"
	"phishguard/internal/services/reports"
)

type stubAnalyzer struct {
	got string
	err error
}

func (s *stubAnalyzer) Analyze(_ context.Context, rawURL string) (domain.AnalysisResult, error) {
	s.got = rawURL
	if s.err != nil {
		return domain.AnalysisResult{}, s.err
	}
	return domain.AnalysisResult{
		URL: rawURL, Domain: "example.com", RiskScore: 50, Confidence: 100,
		DetectionMethods: []domain.DetectionMethod{domain.MethodMachineLearning},
		Reasons:          []string{}, Verdict: domain.VerdictSuspicious,
		Timestamp: time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
	}, nil
}

type failingBlacklistRepo struct{ *memory.Store }

func (failingBlacklistRepo) Insert(context.Context, domain.BlacklistEntry) (bool, error) {
	return false, errors.New("disk full")
}

type harness struct {
	handler  http.Handler
	analyzer *stubAnalyzer
	store    *memory.Store
	bl       *blacklist.Checker
}

func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newHarness(t *testing.T, mutate ...func(*Options)) *harness {
	t.Helper()
	store := memory.New()
	bl, err := blacklist.New(context.Background(), store, nil, quiet())
	require.NoError(t, err)
	an := &stubAnalyzer{}
	opts := Options{
		Analyzer:  an,
		Blacklist: bl,
		Reports:   reports.New(store),
		Metrics:   metrics.New().Handler(),
		Logger:    quiet(),
	}
	for _, m := range mutate {
		m(&opts)
	}
	return &harness{handler: New(opts).Routes(), analyzer: an, store: store, bl: bl}
}

func (h *harness) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	rec := h.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"phishing-detector"}`, rec.Body.String())
}

func TestAnalyze(t *testing.T) {
	h := newHarness(t)
	rec := h.do(http.MethodPost, "/analyze", `{"url":"  http://example.com/account "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com/account", h.analyzer.got)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, "suspicious", body["verdict"])
	assert.EqualValues(t, 50, body["risk_score"])
	assert.Equal(t, []any{"machine_learning"}, body["detection_methods"])
	assert.Equal(t, []any{}, body["reasons"])
}

func TestAnalyzeBadRequests(t *testing.T) {
	tests := []struct {
		name, body string
	}{
		{"missing url", `{}`},
		{"empty url", `{"url":"   "}`},
		{"not json", `url=http://x`},
		{"empty body", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			rec := h.do(http.MethodPost, "/analyze", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decode[api.Error](t, rec).Error)
			assert.Empty(t, h.analyzer.got)
		})
	}
}

func TestAnalyzeMapsErrors(t *testing.T) {
	h := newHarness(t)
	h.analyzer.err = domain.NewInputError("nope", "missing scheme", nil)
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPost, "/analyze", `{"url":"nope"}`).Code)

	h.analyzer.err = errors.New("boom")
	assert.Equal(t, http.StatusInternalServerError, h.do(http.MethodPost, "/analyze", `{"url":"http://x.test"}`).Code)
}

func TestBlacklistAdd(t *testing.T) {
	h := newHarness(t)
	rec := h.do(http.MethodPost, "/blacklist", `{"domain":"Evil.Test"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, api.BlacklistResponse{Success: true, Message: "Evil.Test added to blacklist"}, decode[api.BlacklistResponse](t, rec))

	_, ok := h.bl.MatchHost("login.evil.test")
	assert.True(t, ok)

	entries, err := h.store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, blacklist.DefaultReason, entries[0].Reason)
}

func TestBlacklistAddErrors(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPost, "/blacklist", `{"reason":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodPost, "/blacklist", `{"domain":"http://x.test/"}`).Code)

	bl, err := blacklist.New(context.Background(), failingBlacklistRepo{Store: memory.New()}, nil, quiet())
	require.NoError(t, err)
	h = newHarness(t, func(o *Options) { o.Blacklist = bl })
	rec := h.do(http.MethodPost, "/blacklist", `{"domain":"evil.test"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decode[api.Error](t, rec).Error, "disk full")
}

func TestStatistics(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.store.Upsert(ctx, domain.AnalysisResult{URL: "a", RiskScore: 90, Verdict: domain.VerdictPhishing}))
	require.NoError(t, h.store.Upsert(ctx, domain.AnalysisResult{URL: "b", RiskScore: 0, Verdict: domain.VerdictClean}))

	rec := h.do(http.MethodGet, "/statistics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_analyzed":2,"phishing_detected":1,"avg_risk_score":45}`, rec.Body.String())
}

func TestRecentAnalyses(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	for i, v := range []domain.Verdict{domain.VerdictClean, domain.VerdictPhishing, domain.VerdictPhishing} {
		require.NoError(t, h.store.Upsert(ctx, domain.AnalysisResult{
			URL: string(rune('a' + i)), Timestamp: base.Add(time.Duration(i) * time.Second), Verdict: v,
		}))
	}

	rec := h.do(http.MethodGet, "/analyses?verdict=phishing&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]domain.AnalysisResult](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].URL)

	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodGet, "/analyses?limit=many", "").Code)
	assert.Equal(t, http.StatusBadRequest, h.do(http.MethodGet, "/analyses?verdict=maybe", "").Code)
}

func TestBlacklistCustomReason(t *testing.T) {
	h := newHarness(t)
	rec := h.do(http.MethodPost, "/blacklist", `{"domain":"evil.test","reason":"  spam campaign "}`)
	require.Equal(t, http.StatusOK, rec.Code)

	entries, err := h.store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "spam campaign", entries[0].Reason)
}

func TestOversizedBodyRejected(t *testing.T) {
	h := newHarness(t)
	body := `{"url":"http://x.test/` + strings.Repeat("a", maxBodyBytes) + `"}`
	rec := h.do(http.MethodPost, "/analyze", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, h.analyzer.got)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHarness(t)
	rec := h.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	h := newHarness(t, func(o *Options) {
		o.RateLimit = 0.001
		o.Burst = 1
	})
	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/statistics", "").Code)
	rec := h.do(http.MethodGet, "/statistics", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// health is exempt from the bucket
	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/health", "").Code)
}

func TestCORSPreflight(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	req.Header.Set("Origin", "chrome-extension://abcdef")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

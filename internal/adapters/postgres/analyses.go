package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"phishguard/internal/domain"
)

// AnalysisRepository

func (db *DB) Upsert(ctx context.Context, r domain.AnalysisResult) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO url_analyses (url, domain, risk_score, confidence, verdict, detection_methods, reasons, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (url) DO UPDATE SET
			domain = EXCLUDED.domain,
			risk_score = EXCLUDED.risk_score,
			confidence = EXCLUDED.confidence,
			verdict = EXCLUDED.verdict,
			detection_methods = EXCLUDED.detection_methods,
			reasons = EXCLUDED.reasons,
			analyzed_at = EXCLUDED.analyzed_at
	`, r.URL, r.Domain, r.RiskScore, r.Confidence, string(r.Verdict), methodStrings(r.DetectionMethods), nonNil(r.Reasons), r.Timestamp)
	if err != nil {
		return fmt.Errorf("upsert analysis: %w", err)
	}
	return nil
}

func (db *DB) Statistics(ctx context.Context) (domain.Statistics, error) {
	var out domain.Statistics
	err := db.Pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE verdict = 'phishing'),
		       COALESCE(ROUND(AVG(risk_score)::numeric, 2), 0)::float8
		FROM url_analyses
	`).Scan(&out.TotalAnalyzed, &out.PhishingDetected, &out.AvgRiskScore)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("query statistics: %w", err)
	}
	return out, nil
}

func (db *DB) Recent(ctx context.Context, f domain.AnalysisFilter) ([]domain.AnalysisResult, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT url, domain, risk_score, confidence, verdict, detection_methods, reasons, analyzed_at
		FROM url_analyses
		WHERE ($1::text = '' OR verdict = $1::text)
		ORDER BY analyzed_at DESC, url
		LIMIT $2
	`, string(f.Verdict), f.Limit)
	if err != nil {
		return nil, fmt.Errorf("query recent analyses: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanAnalysis)
	if err != nil {
		return nil, fmt.Errorf("scan recent analyses: %w", err)
	}
	return out, nil
}

func scanAnalysis(row pgx.CollectableRow) (domain.AnalysisResult, error) {
	var (
		r       domain.AnalysisResult
		verdict string
		methods []string
	)
	if err := row.Scan(&r.URL, &r.Domain, &r.RiskScore, &r.Confidence, &verdict, &methods, &r.Reasons, &r.Timestamp); err != nil {
		return r, err
	}
	r.Verdict = domain.Verdict(verdict)
	r.DetectionMethods = make([]domain.DetectionMethod, len(methods))
	for i, m := range methods {
		r.DetectionMethods[i] = domain.DetectionMethod(m)
	}
	r.Reasons = nonNil(r.Reasons)
	r.Timestamp = r.Timestamp.UTC()
	return r, nil
}

func methodStrings(ms []domain.DetectionMethod) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = string(m)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

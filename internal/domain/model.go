package domain

import "time"

// Core domain models used by the scoring engine and its adapters. API payloads
// are serialised directly from these; keep json tags stable for the extension.

// Verdict is the three-way classification of an analysed URL.
type Verdict string

const (
	VerdictPhishing   Verdict = "phishing"
	VerdictSuspicious Verdict = "suspicious"
	VerdictClean      Verdict = "clean"
)

func (v Verdict) Valid() bool {
	switch v {
	case VerdictPhishing, VerdictSuspicious, VerdictClean:
		return true
	}
	return false
}

// DetectionMethod names a scoring stage that contributed to a result.
type DetectionMethod string

const (
	MethodBlacklist       DetectionMethod = "blacklist"
	MethodHeuristic       DetectionMethod = "heuristic"
	MethodMachineLearning DetectionMethod = "machine_learning"
	MethodContent         DetectionMethod = "content_analysis"
)

// FeatureRecord is a derived snapshot of lexical URL features.
type FeatureRecord struct {
	URLLength             int     `json:"url_length"`
	DomainLength          int     `json:"domain_length"`
	PathLength            int     `json:"path_length"`
	QueryLength           int     `json:"query_length"`
	SubdomainCount        int     `json:"subdomain_count"`
	TLD                   string  `json:"tld"`
	DotCount              int     `json:"dot_count"`
	HyphenCount           int     `json:"hyphen_count"`
	UnderscoreCount       int     `json:"underscore_count"`
	AtSymbolCount         int     `json:"at_symbol_count"`
	PercentCount          int     `json:"percent_count"`
	SlashCount            int     `json:"slash_count"`
	QuestionCount         int     `json:"question_count"`
	EqualCount            int     `json:"equal_count"`
	HasHTTPS              bool    `json:"has_https"`
	HasHTTP               bool    `json:"has_http"`
	HasWWW                bool    `json:"has_www"`
	HasIP                 bool    `json:"has_ip"`
	HasSuspiciousKeywords bool    `json:"has_suspicious_keywords"`
	Entropy               float64 `json:"entropy"`
}

// PartialResult is one stage's contribution to the aggregate score.
type PartialResult struct {
	Score   int
	Reasons []string
}

// AnalysisResult is the outcome of one analysis call. Persisted keyed by URL.
type AnalysisResult struct {
	URL              string            `json:"url"`
	Domain           string            `json:"domain"`
	Timestamp        time.Time         `json:"timestamp"`
	RiskScore        int               `json:"risk_score"`
	Confidence       int               `json:"confidence"`
	DetectionMethods []DetectionMethod `json:"detection_methods"`
	Reasons          []string          `json:"reasons"`
	Verdict          Verdict           `json:"verdict"`
}

type BlacklistEntry struct {
	Domain    string    `json:"domain"`
	Reason    string    `json:"reason"`
	AddedDate time.Time `json:"added_date"`
}

// Statistics aggregates all persisted analysis results.
type Statistics struct {
	TotalAnalyzed    int     `json:"total_analyzed"`
	PhishingDetected int     `json:"phishing_detected"`
	AvgRiskScore     float64 `json:"avg_risk_score"`
}

// AnalysisFilter narrows a history listing.
type AnalysisFilter struct {
	Verdict Verdict
	Limit   int
}

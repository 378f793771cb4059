// Package mlscore is the feature-weighted scoring stage. It stands in for a
// trained classifier: each feature threshold adds a fixed weight.
package mlscore

import (
	"phishguard/internal/domain"
	"phishguard/internal/rules"
)

// Weight is one thresholded feature and the points it adds.
type Weight struct {
	Name   string
	Points int
	Match  func(f domain.FeatureRecord, r *rules.Compiled) bool
}

// Weights is the fixed weight table, evaluated in order.
var Weights = []Weight{
	{"url_length", 15, func(f domain.FeatureRecord, _ *rules.Compiled) bool { return f.URLLength > 75 }},
	{"domain_length", 20, func(f domain.FeatureRecord, _ *rules.Compiled) bool { return f.DomainLength > 50 }},
	{"dot_count", 10, func(f domain.FeatureRecord, _ *rules.Compiled) bool { return f.DotCount > 5 }},
	{"hyphen_count", 15, func(f domain.FeatureRecord, _ *rules.Compiled) bool { return f.HyphenCount > 3 }},
	{"at_symbol", 25, func(f domain.FeatureRecord, _ *rules.Compiled) bool { return f.AtSymbolCount > 0 }},
	{"no_https", 20, func(f domain.FeatureRecord, _ *rules.Compiled) bool { return !f.HasHTTPS }},
	{"suspicious_keywords", 30, func(f domain.FeatureRecord, _ *rules.Compiled) bool { return f.HasSuspiciousKeywords }},
	{"entropy", 25, func(f domain.FeatureRecord, _ *rules.Compiled) bool { return f.Entropy > 4.5 }},
	{"subdomain_count", 15, func(f domain.FeatureRecord, _ *rules.Compiled) bool { return f.SubdomainCount > 2 }},
	{"suspicious_tld", 35, func(f domain.FeatureRecord, r *rules.Compiled) bool { return r.IsSuspiciousTLD(f.TLD) }},
}

// Result carries the stage score, the confidence derived from it and the
// names of the weights that fired.
type Result struct {
	domain.PartialResult
	Confidence int
	Matched    []string
}

type Scorer struct {
	rules *rules.Compiled
}

func New(r *rules.Compiled) *Scorer { return &Scorer{rules: r} }

// Score adds up the weights whose threshold f crosses. The stage produces no
// human-readable reasons; Matched lists the weight names for logging.
func (s *Scorer) Score(f domain.FeatureRecord) Result {
	var res Result
	for _, w := range Weights {
		if w.Match(f, s.rules) {
			res.Score += w.Points
			res.Matched = append(res.Matched, w.Name)
		}
	}
	res.Confidence = min(res.Score*2, 100)
	return res
}

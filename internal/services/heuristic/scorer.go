package heuristic

import (
	"strings"
	"unicode/utf8"

	"phishguard/internal/domain"
	"phishguard/internal/rules"
	"phishguard/internal/services/features"
)

// Rule weights.
const (
	LongURLScore        = 20
	ShortURLScore       = 10
	IPHostScore         = 50
	SuspiciousTLDScore  = 30
	ManySubdomainsScore = 25
	PatternScore        = 30
	InsecureLoginScore  = 40

	longURL      = 100
	shortURL     = 20
	maxHostDots  = 3
	secureScheme = "https"
)

// Scorer applies the lexical rule battery to a URL. Every rule is evaluated
// independently; the two length rules are exclusive by construction.
type Scorer struct {
	rules *rules.Compiled
}

func New(r *rules.Compiled) *Scorer { return &Scorer{rules: r} }

func (s *Scorer) Score(p *features.ParsedURL) domain.PartialResult {
	var out domain.PartialResult
	add := func(points int, reason string) {
		out.Score += points
		out.Reasons = append(out.Reasons, reason)
	}

	n := utf8.RuneCountInString(p.Raw)
	switch {
	case n > longURL:
		add(LongURLScore, "Very long URL")
	case n < shortURL:
		add(ShortURLScore, "Very short URL (suspicious)")
	}

	host := p.Host
	if features.IsDottedQuad(host) {
		add(IPHostScore, "Uses IP address instead of domain")
	}
	for _, tld := range s.rules.SuspiciousTLDs {
		if strings.Contains(host, tld) {
			add(SuspiciousTLDScore, "Suspicious top-level domain")
			break
		}
	}
	if strings.Count(host, ".") > maxHostDots {
		add(ManySubdomainsScore, "Excessive number of subdomains")
	}
	for _, re := range s.rules.Patterns {
		if re.MatchString(p.Raw) {
			add(PatternScore, "Suspicious pattern detected")
			break
		}
	}

	lower := strings.ToLower(p.Raw)
	for _, kw := range s.rules.SensitiveKeywords {
		if strings.Contains(lower, kw) {
			if !strings.EqualFold(p.URL.Scheme, secureScheme) {
				add(InsecureLoginScore, "Sensitive page without HTTPS")
			}
			break
		}
	}
	return out
}

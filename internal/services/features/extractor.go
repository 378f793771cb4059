package features

import (
	"math"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"phishguard/internal/domain"
	"phishguard/internal/rules"
)

var dottedQuad = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+$`)

// ParsedURL is a validated URL plus the normalised pieces every stage needs.
type ParsedURL struct {
	Raw string
	URL *url.URL
	// Host is the authority without user-info, lower-cased (may carry a port).
	Host string
	// Hostname is Host without the port.
	Hostname string
}

// Parse validates raw and splits it into components. A URL without scheme or
// host is rejected; it would otherwise score as an empty, "clean" record.
func Parse(raw string) (*ParsedURL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, domain.NewInputError(raw, "empty url", nil)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, domain.NewInputError(raw, "malformed url", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, domain.NewInputError(raw, "url needs scheme and host", nil)
	}
	return &ParsedURL{
		Raw:      raw,
		URL:      u,
		Host:     strings.ToLower(u.Host),
		Hostname: strings.ToLower(u.Hostname()),
	}, nil
}

// IsDottedQuad reports whether host is four dot-separated digit groups.
// Octet ranges are not checked.
func IsDottedQuad(host string) bool { return dottedQuad.MatchString(host) }

// Extractor turns a parsed URL into a FeatureRecord.
type Extractor struct {
	rules *rules.Compiled
}

func NewExtractor(r *rules.Compiled) *Extractor { return &Extractor{rules: r} }

func (e *Extractor) Extract(p *ParsedURL) domain.FeatureRecord {
	raw := p.Raw
	labels := strings.Split(p.Host, ".")

	f := domain.FeatureRecord{
		URLLength:    utf8.RuneCountInString(raw),
		DomainLength: utf8.RuneCountInString(p.Host),
		PathLength:   utf8.RuneCountInString(rawPath(raw)),
		QueryLength:  utf8.RuneCountInString(p.URL.RawQuery),

		DotCount:        strings.Count(raw, "."),
		HyphenCount:     strings.Count(raw, "-"),
		UnderscoreCount: strings.Count(raw, "_"),
		AtSymbolCount:   strings.Count(raw, "@"),
		PercentCount:    strings.Count(raw, "%"),
		SlashCount:      strings.Count(raw, "/"),
		QuestionCount:   strings.Count(raw, "?"),
		EqualCount:      strings.Count(raw, "="),

		HasHTTPS: strings.EqualFold(p.URL.Scheme, "https"),
		HasHTTP:  strings.EqualFold(p.URL.Scheme, "http"),
		HasWWW:   strings.Contains(p.Host, "www."),
		HasIP:    IsDottedQuad(p.Host),

		Entropy: Entropy(raw),
	}
	if len(labels) > 2 {
		f.SubdomainCount = len(labels) - 2
	}
	if len(labels) >= 2 {
		f.TLD = "." + strings.Join(labels[len(labels)-2:], ".")
	}
	lower := strings.ToLower(raw)
	for _, kw := range e.rules.SuspiciousKeywords {
		if strings.Contains(lower, kw) {
			f.HasSuspiciousKeywords = true
			break
		}
	}
	return f
}

// rawPath returns the path exactly as written in raw: the text after the
// authority up to the query or fragment.
func rawPath(raw string) string {
	i := strings.Index(raw, "//")
	if i < 0 {
		return ""
	}
	rest := raw[i+2:]
	start := strings.IndexAny(rest, "/?#")
	if start < 0 || rest[start] != '/' {
		return ""
	}
	rest = rest[start:]
	if end := strings.IndexAny(rest, "?#"); end >= 0 {
		rest = rest[:end]
	}
	return rest
}

// Entropy is the base-2 Shannon entropy of s's character distribution.
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}
	counts := make(map[rune]int)
	total := 0
	for _, r := range s {
		counts[r]++
		total++
	}
	var h float64
	for _, n := range counts {
		p := float64(n) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

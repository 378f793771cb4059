// Package rules holds the static detection configuration shared by every
// scoring stage: keyword and TLD lists, URL patterns, content markers, the
// seed blacklist and the classification thresholds.
//
// A Set is loaded once at start-up and never mutated afterwards.
package rules

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

type Thresholds struct {
	Phishing       int `yaml:"phishing"`
	Suspicious     int `yaml:"suspicious"`
	ContentGate    int `yaml:"content_gate"`
	BlacklistScore int `yaml:"blacklist_score"`
	ExternalLinks  int `yaml:"external_links"`
}

// Set is the raw, file-friendly form of the rules.
type Set struct {
	SuspiciousKeywords []string   `yaml:"suspicious_keywords"`
	SuspiciousTLDs     []string   `yaml:"suspicious_tlds"`
	SuspiciousPatterns []string   `yaml:"suspicious_patterns"`
	SensitiveKeywords  []string   `yaml:"sensitive_keywords"`
	SensitiveFields    []string   `yaml:"sensitive_fields"`
	SuspiciousPhrases  []string   `yaml:"suspicious_phrases"`
	SeedBlacklist      []string   `yaml:"seed_blacklist"`
	Thresholds         Thresholds `yaml:"thresholds"`
}

// Default returns the built-in rule set.
func Default() Set {
	return Set{
		SuspiciousKeywords: []string{
			"login", "signin", "verify", "update", "confirm", "security",
			"account", "bank", "paypal", "amazon", "facebook", "google",
			"secure", "authentication", "validation",
		},
		SuspiciousTLDs: []string{
			".tk", ".ml", ".ga", ".cf", ".gq", ".top", ".xyz", ".click",
			".download", ".work", ".party", ".racing", ".accountant",
		},
		SuspiciousPatterns: []string{
			`\d+\.\d+\.\d+\.\d+`, // dotted quad
			`[-_]{2,}`,
			`\.\d+\.`, // numeric label
			`(?i)[a-z0-9]{30,}`,
		},
		SensitiveKeywords: []string{"login", "signin", "password"},
		SensitiveFields:   []string{"password", "credit card", "ssn", "social security"},
		SuspiciousPhrases: []string{
			"verify your identity", "confirm your account", "update your information",
			"suspended account", "unauthorized access", "security breach",
		},
		SeedBlacklist: []string{
			"bit.ly", "tinyurl.com", "t.co", "goo.gl", "ow.ly",
			"phishing-site.com", "fake-login.net", "scam-bank.org",
		},
		Thresholds: Thresholds{
			Phishing:       60,
			Suspicious:     40,
			ContentGate:    30,
			BlacklistScore: 80,
			ExternalLinks:  10,
		},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default value; lists present in the file replace the default list.
func Load(path string) (Set, error) {
	set := Default()
	if path == "" {
		return set, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return set, fmt.Errorf("read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &set); err != nil {
		return set, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return set, nil
}

// Compiled is the ready-to-evaluate form of a Set.
type Compiled struct {
	Set
	Patterns []*regexp.Regexp
}

// Compile lower-cases the keyword lists and compiles every pattern
// case-insensitively.
func Compile(set Set) (*Compiled, error) {
	t := set.Thresholds
	if t.Suspicious > t.Phishing {
		return nil, fmt.Errorf("suspicious threshold %d above phishing threshold %d", t.Suspicious, t.Phishing)
	}
	out := &Compiled{Set: set}
	out.SuspiciousKeywords = lowerAll(set.SuspiciousKeywords)
	out.SuspiciousTLDs = lowerAll(set.SuspiciousTLDs)
	out.SensitiveKeywords = lowerAll(set.SensitiveKeywords)
	out.SensitiveFields = lowerAll(set.SensitiveFields)
	out.SuspiciousPhrases = lowerAll(set.SuspiciousPhrases)
	out.SeedBlacklist = lowerAll(set.SeedBlacklist)
	for _, p := range set.SuspiciousPatterns {
		expr := p
		if !strings.HasPrefix(expr, "(?i)") {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", p, err)
		}
		out.Patterns = append(out.Patterns, re)
	}
	return out, nil
}

// MustDefault compiles the built-in set; it cannot fail.
func MustDefault() *Compiled {
	c, err := Compile(Default())
	if err != nil {
		panic(err)
	}
	return c
}

// IsSuspiciousTLD reports whether tld is itself one of the listed TLDs.
// The extractor's tld carries the last two labels, so ".example.tk" is not
// a member; the host-level heuristic rule covers that case.
func (c *Compiled) IsSuspiciousTLD(tld string) bool {
	return slices.Contains(c.SuspiciousTLDs, strings.ToLower(tld))
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

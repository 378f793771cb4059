package features

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phishguard/internal/domain"
	"phishguard/internal/rules"
)

func extract(t *testing.T, raw string) domain.FeatureRecord {
	t.Helper()
	p, err := Parse(raw)
	require.NoError(t, err)
	return NewExtractor(rules.MustDefault()).Extract(p)
}

func TestEntropy(t *testing.T) {
	assert.Equal(t, 0.0, Entropy("aaaa"))
	assert.Equal(t, 2.0, Entropy("abcd"))
	assert.Equal(t, 1.0, Entropy("abab"))
	assert.Equal(t, 0.0, Entropy(""))
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "   ", "example.com", "http://", "://x", "http://[::1"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestParseNormalisesHost(t *testing.T) {
	p, err := Parse("https://user@WWW.Example.COM:8443/a")
	require.NoError(t, err)
	assert.Equal(t, "www.example.com:8443", p.Host)
	assert.Equal(t, "www.example.com", p.Hostname)
}

func TestPathLengthCountsCharactersAsWritten(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"https://example.com/ü", 2},
		{"https://example.com/a%20b", 6},
		{"https://example.com", 0},
		{"https://example.com?x=/y", 0},
		{"https://user@example.com/p#frag/x", 2},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, extract(t, tt.raw).PathLength)
		})
	}
}

func TestExtractBasicCounts(t *testing.T) {
	raw := "https://www.example.com/path/to-page?a=1&b=2"
	f := extract(t, raw)

	assert.Equal(t, len(raw), f.URLLength)
	assert.Equal(t, len("www.example.com"), f.DomainLength)
	assert.Equal(t, len("/path/to-page"), f.PathLength)
	assert.Equal(t, len("a=1&b=2"), f.QueryLength)
	assert.Equal(t, 1, f.SubdomainCount)
	assert.Equal(t, ".example.com", f.TLD)
	assert.Equal(t, 2, f.DotCount)
	assert.Equal(t, 1, f.HyphenCount)
	assert.Equal(t, 0, f.UnderscoreCount)
	assert.Equal(t, 0, f.AtSymbolCount)
	assert.Equal(t, 4, f.SlashCount)
	assert.Equal(t, 1, f.QuestionCount)
	assert.Equal(t, 2, f.EqualCount)
	assert.True(t, f.HasHTTPS)
	assert.False(t, f.HasHTTP)
	assert.True(t, f.HasWWW)
	assert.False(t, f.HasIP)
	assert.False(t, f.HasSuspiciousKeywords)
	assert.Greater(t, f.Entropy, 3.0)
}

func TestExtractSubdomainsAndTLD(t *testing.T) {
	tests := []struct {
		raw        string
		subdomains int
		tld        string
	}{
		{"http://localhost/", 0, ""},
		{"http://example.com/", 0, ".example.com"},
		{"http://a.b.c.example.co.uk/", 4, ".co.uk"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			f := extract(t, tt.raw)
			assert.Equal(t, tt.subdomains, f.SubdomainCount)
			assert.Equal(t, tt.tld, f.TLD)
		})
	}
}

func TestExtractIPAndKeywords(t *testing.T) {
	f := extract(t, "http://192.168.1.1/login")
	assert.True(t, f.HasIP)
	assert.True(t, f.HasHTTP)
	assert.False(t, f.HasHTTPS)
	assert.True(t, f.HasSuspiciousKeywords)
}

func TestExtractKeywordsCaseInsensitive(t *testing.T) {
	assert.True(t, extract(t, "https://example.com/PayPal").HasSuspiciousKeywords)
}

func TestExtractCountsRunes(t *testing.T) {
	f := extract(t, "https://bücher.de/")
	assert.Equal(t, len([]rune("https://bücher.de/")), f.URLLength)
	assert.Equal(t, 9, f.DomainLength)
}

func TestIsDottedQuad(t *testing.T) {
	assert.True(t, IsDottedQuad("999.1.1.1"))
	assert.False(t, IsDottedQuad("1.1.1"))
	assert.False(t, IsDottedQuad("1.1.1.1:80"))
	assert.False(t, IsDottedQuad(strings.Repeat("1.", 4)))
}

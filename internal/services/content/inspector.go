package content

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"phishguard/internal/domain"
	"phishguard/internal/ports"
	"phishguard/internal/rules"
)

const (
	SensitiveFormScore = 40
	PhraseScore        = 25
	ExternalLinksScore = 20
)

// Outcome distinguishes a page that was fetched and scored (possibly zero)
// from one that could not be inspected.
type Outcome int

const (
	Inspected Outcome = iota + 1
	FetchFailed
)

func (o Outcome) String() string {
	switch o {
	case Inspected:
		return "inspected"
	case FetchFailed:
		return "fetch_failed"
	}
	return "unknown"
}

type Result struct {
	domain.PartialResult
	Outcome Outcome
	Err     error
}

// Inspector fetches a page and scores its markup for phishing indicators.
type Inspector struct {
	fetcher ports.PageFetcher
	rules   *rules.Compiled
	log     logrus.FieldLogger
}

func New(fetcher ports.PageFetcher, r *rules.Compiled, log logrus.FieldLogger) *Inspector {
	return &Inspector{fetcher: fetcher, rules: r, log: log}
}

// Inspect never returns an error: fetch failures come back as FetchFailed
// with a zero score.
func (in *Inspector) Inspect(ctx context.Context, rawURL string) Result {
	body, err := in.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		in.log.WithFields(logrus.Fields{"url": rawURL, "stage": "content"}).WithError(err).Warn("content fetch failed")
		return Result{Outcome: FetchFailed, Err: err}
	}
	return Result{PartialResult: in.ScoreBody(body), Outcome: Inspected}
}

// ScoreBody applies the content rules to a page body.
func (in *Inspector) ScoreBody(body string) domain.PartialResult {
	var out domain.PartialResult
	text := strings.ToLower(body)

	if strings.Contains(text, "<form") {
		for _, field := range in.rules.SensitiveFields {
			if strings.Contains(text, field) {
				out.Score += SensitiveFormScore
				out.Reasons = append(out.Reasons, "Sensitive form fields detected")
				break
			}
		}
	}
	for _, phrase := range in.rules.SuspiciousPhrases {
		if strings.Contains(text, phrase) {
			out.Score += PhraseScore
			out.Reasons = append(out.Reasons, "Suspicious content: "+phrase)
		}
	}
	external := strings.Count(text, `src="http`) + strings.Count(text, `href="http`)
	if external > in.rules.Thresholds.ExternalLinks {
		out.Score += ExternalLinksScore
		out.Reasons = append(out.Reasons, "Excessive external resources")
	}
	return out
}

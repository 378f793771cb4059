package analyzer

import (
	"context"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/publicsuffix"

	"phishguard/internal/domain"
	"phishguard/internal/metrics"
	"phishguard/internal/ports"
	"phishguard/internal/rules"
	"phishguard/internal/services/content"
	"phishguard/internal/services/features"
	"phishguard/internal/services/heuristic"
	"phishguard/internal/services/mlscore"
)

const storeTimeout = 5 * time.Second

// HostMatcher looks a host up in the blacklist.
type HostMatcher interface {
	MatchHost(host string) (matched string, ok bool)
}

type Options struct {
	Rules     *rules.Compiled
	Blacklist HostMatcher
	// Content may be nil to disable page inspection.
	Content *content.Inspector
	Results ports.AnalysisRepository
	Metrics *metrics.Metrics
	Logger  logrus.FieldLogger
	Now     func() time.Time
}

// Service runs the scoring pipeline: blacklist, heuristic and feature stages
// always, content inspection only past the gate, then classification.
type Service struct {
	rules     *rules.Compiled
	extractor *features.Extractor
	blacklist HostMatcher
	heuristic *heuristic.Scorer
	ml        *mlscore.Scorer
	content   *content.Inspector
	results   ports.AnalysisRepository
	metrics   *metrics.Metrics
	log       logrus.FieldLogger
	now       func() time.Time
}

func New(opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		rules:     opts.Rules,
		extractor: features.NewExtractor(opts.Rules),
		blacklist: opts.Blacklist,
		heuristic: heuristic.New(opts.Rules),
		ml:        mlscore.New(opts.Rules),
		content:   opts.Content,
		results:   opts.Results,
		metrics:   opts.Metrics,
		log:       opts.Logger,
		now:       now,
	}
}

// Analyze scores rawURL and stores the result. Malformed input fails before
// any stage runs; a storage failure is logged and the result still returned.
func (s *Service) Analyze(ctx context.Context, rawURL string) (domain.AnalysisResult, error) {
	p, err := features.Parse(rawURL)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	log := s.log.WithField("url", rawURL)

	res := domain.AnalysisResult{
		URL:              rawURL,
		Domain:           registrableDomain(p.Hostname),
		Timestamp:        s.now().UTC(),
		DetectionMethods: []domain.DetectionMethod{},
		Reasons:          []string{},
	}
	add := func(method domain.DetectionMethod, part domain.PartialResult) {
		if part.Score <= 0 {
			return
		}
		res.RiskScore += part.Score
		res.DetectionMethods = append(res.DetectionMethods, method)
		res.Reasons = append(res.Reasons, part.Reasons...)
	}

	if matched, ok := s.blacklist.MatchHost(p.Hostname); ok {
		log.WithField("blacklisted", matched).Debug("blacklist hit")
		add(domain.MethodBlacklist, domain.PartialResult{
			Score:   s.rules.Thresholds.BlacklistScore,
			Reasons: []string{"URL found in phishing blacklist"},
		})
	}

	add(domain.MethodHeuristic, s.heuristic.Score(p))

	ml := s.ml.Score(s.extractor.Extract(p))
	add(domain.MethodMachineLearning, ml.PartialResult)
	res.Confidence = max(res.Confidence, ml.Confidence)

	if s.content != nil && res.RiskScore > s.rules.Thresholds.ContentGate {
		cr := s.content.Inspect(ctx, rawURL)
		s.metrics.ObserveContent(cr.Outcome.String())
		if cr.Outcome == content.Inspected {
			add(domain.MethodContent, cr.PartialResult)
		}
	}

	res.Verdict = Classify(res.RiskScore, s.rules.Thresholds)
	s.metrics.ObserveAnalysis(string(res.Verdict), res.RiskScore)

	// A client that hangs up must not cost us the record.
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer cancel()
	if err := s.results.Upsert(storeCtx, res); err != nil {
		log.WithError(err).Error("store analysis failed")
	}

	log.WithFields(logrus.Fields{
		"risk_score": res.RiskScore,
		"verdict":    res.Verdict,
		"methods":    res.DetectionMethods,
	}).Info("url analyzed")
	return res, nil
}

// Classify maps an aggregate score onto a verdict.
func Classify(score int, t rules.Thresholds) domain.Verdict {
	switch {
	case score >= t.Phishing:
		return domain.VerdictPhishing
	case score >= t.Suspicious:
		return domain.VerdictSuspicious
	default:
		return domain.VerdictClean
	}
}

func registrableDomain(host string) string {
	if net.ParseIP(host) != nil {
		return host
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return registrable
}

package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"phishguard/internal/api"
	"phishguard/internal/domain"
	"phishguard/internal/ports"
	"phishguard/internal/services/blacklist"
)

const maxBodyBytes = 64 << 10

type Options struct {
	Analyzer  ports.Analyzer
	Blacklist ports.Blacklist
	Reports   ports.Reports
	// Metrics is mounted at /metrics when non-nil.
	Metrics http.Handler
	Logger  logrus.FieldLogger

	CORSOrigins []string
	// RateLimit of zero disables the inbound limiter.
	RateLimit rate.Limit
	Burst     int
}

// Server implements the generated StrictServerInterface.
type Server struct {
	analyzer  ports.Analyzer
	blacklist ports.Blacklist
	reports   ports.Reports
	metrics   http.Handler
	log       logrus.FieldLogger
	origins   []string
	limiter   *rate.Limiter
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(opts Options) *Server {
	s := &Server{
		analyzer:  opts.Analyzer,
		blacklist: opts.Blacklist,
		reports:   opts.Reports,
		metrics:   opts.Metrics,
		log:       opts.Logger,
		origins:   opts.CORSOrigins,
	}
	if len(s.origins) == 0 {
		s.origins = []string{"*"}
	}
	if opts.RateLimit > 0 {
		s.limiter = rate.NewLimiter(opts.RateLimit, max(opts.Burst, 1))
	}
	return s
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(limitBody(maxBodyBytes))

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	var mws []api.StrictMiddlewareFunc
	if s.limiter != nil {
		mws = append(mws, rateLimit(s.limiter, "GetHealth"))
	}
	handler := api.NewStrictHandlerWithOptions(s, mws, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  badRequest,
		ResponseErrorHandlerFunc: s.fail,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: badRequest,
	})
	return r
}

// Strict handler methods

func (s *Server) GetHealth(context.Context, api.GetHealthRequestObject) (api.GetHealthResponseObject, error) {
	return api.GetHealth200JSONResponse{Status: "healthy", Service: "phishing-detector"}, nil
}

func (s *Server) PostAnalyze(ctx context.Context, req api.PostAnalyzeRequestObject) (api.PostAnalyzeResponseObject, error) {
	rawURL := strings.TrimSpace(req.Body.Url)
	if rawURL == "" {
		return api.PostAnalyze400JSONResponse{Error: "URL is required"}, nil
	}
	res, err := s.analyzer.Analyze(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return api.PostAnalyze200JSONResponse(toAPIResult(res)), nil
}

func (s *Server) PostBlacklist(ctx context.Context, req api.PostBlacklistRequestObject) (api.PostBlacklistResponseObject, error) {
	d := strings.TrimSpace(req.Body.Domain)
	if d == "" {
		return api.PostBlacklist400JSONResponse{Error: "Domain is required"}, nil
	}
	reason := blacklist.DefaultReason
	if req.Body.Reason != nil && strings.TrimSpace(*req.Body.Reason) != "" {
		reason = strings.TrimSpace(*req.Body.Reason)
	}
	if err := s.blacklist.AddDomain(ctx, d, reason); err != nil {
		return nil, err
	}
	return api.PostBlacklist200JSONResponse{Success: true, Message: fmt.Sprintf("%s added to blacklist", d)}, nil
}

func (s *Server) GetStatistics(ctx context.Context, _ api.GetStatisticsRequestObject) (api.GetStatisticsResponseObject, error) {
	stats, err := s.reports.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	return api.GetStatistics200JSONResponse{
		TotalAnalyzed:    stats.TotalAnalyzed,
		PhishingDetected: stats.PhishingDetected,
		AvgRiskScore:     stats.AvgRiskScore,
	}, nil
}

func (s *Server) GetAnalyses(ctx context.Context, req api.GetAnalysesRequestObject) (api.GetAnalysesResponseObject, error) {
	var f domain.AnalysisFilter
	if v := req.Params.Verdict; v != nil {
		f.Verdict = domain.Verdict(strings.ToLower(string(*v)))
	}
	if req.Params.Limit != nil {
		f.Limit = *req.Params.Limit
	}
	out, err := s.reports.Recent(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := make(api.GetAnalyses200JSONResponse, 0, len(out))
	for _, r := range out {
		resp = append(resp, toAPIResult(r))
	}
	return resp, nil
}

func toAPIResult(r domain.AnalysisResult) api.AnalysisResult {
	methods := make([]api.DetectionMethod, 0, len(r.DetectionMethods))
	for _, m := range r.DetectionMethods {
		methods = append(methods, api.DetectionMethod(m))
	}
	reasons := r.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return api.AnalysisResult{
		Url:              r.URL,
		Domain:           r.Domain,
		Timestamp:        r.Timestamp,
		RiskScore:        r.RiskScore,
		Confidence:       r.Confidence,
		DetectionMethods: methods,
		Reasons:          reasons,
		Verdict:          api.Verdict(r.Verdict),
	}
}

// fail is the strict response error handler. Invalid input is the caller's
// fault; anything else is logged and reported as 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.log.WithFields(logrus.Fields{
		"path":       r.URL.Path,
		"request_id": middleware.GetReqID(r.Context()),
	}).WithError(err).Error("request failed")
	writeError(w, http.StatusInternalServerError, err.Error())
}

// badRequest reports body decoding and query binding failures.
func badRequest(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}

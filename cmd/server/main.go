package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	httpadapter "phishguard/internal/adapters/http"
	"phishguard/internal/adapters/memory"
	pg "phishguard/internal/adapters/postgres"
	"phishguard/internal/adapters/webfetch"
	"phishguard/internal/config"
	"phishguard/internal/logging"
	"phishguard/internal/metrics"
	"phishguard/internal/ports"
	"phishguard/internal/rules"
	"phishguard/internal/services/analyzer"
	"phishguard/internal/services/blacklist"
	"phishguard/internal/services/content"
	"phishguard/internal/services/reports"
	"phishguard/internal/workers/blacklistsync"
)

type store interface {
	ports.AnalysisRepository
	ports.BlacklistRepository
}

func main() {
	cfg, cfgErr := config.Load()

	log, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, JSON: cfg.Production()})
	if err != nil {
		logrus.WithError(err).Fatal("init logger")
	}
	defer closeLog()

	switch {
	case errors.Is(cfgErr, config.ErrNoDatabase):
		log.Warn("DATABASE_URL not set; results and blacklist additions are kept in memory only")
	case cfgErr != nil:
		log.WithError(cfgErr).Fatal("load config")
	}

	ruleSet, err := rules.Load(cfg.RulesFile)
	if err != nil {
		log.WithError(err).Fatal("load rules")
	}
	compiled, err := rules.Compile(ruleSet)
	if err != nil {
		log.WithError(err).Fatal("compile rules")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var repo store
	if cfg.DatabaseURL != "" {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("db connect")
		}
		defer db.Close()
		if cfg.MigrateOnStart {
			if err := db.Migrate(ctx); err != nil {
				log.WithError(err).Fatal("db migrate")
			}
		}
		repo = db
	} else {
		repo = memory.New()
	}

	checker, err := blacklist.New(ctx, repo, compiled.SeedBlacklist, log.WithField("component", "blacklist"))
	if err != nil {
		log.WithError(err).Fatal("load blacklist")
	}

	m := metrics.New()
	fetcher := webfetch.New(webfetch.WithTimeout(cfg.ContentTimeout), webfetch.WithMaxBytes(cfg.ContentMaxBytes))
	svc := analyzer.New(analyzer.Options{
		Rules:     compiled,
		Blacklist: checker,
		Content:   content.New(fetcher, compiled, log.WithField("component", "content")),
		Results:   repo,
		Metrics:   m,
		Logger:    log.WithField("component", "analyzer"),
	})

	srv := httpadapter.New(httpadapter.Options{
		Analyzer:    svc,
		Blacklist:   checker,
		Reports:     reports.New(repo),
		Metrics:     m.Handler(),
		Logger:      log.WithField("component", "http"),
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   rate.Limit(cfg.RateLimitRPS),
		Burst:       cfg.RateLimitBurst,
	})

	if cfg.BlacklistRefresh > 0 {
		go blacklistsync.Run(ctx, checker, cfg.BlacklistRefresh, log.WithField("component", "blacklistsync"))
		log.WithField("interval", cfg.BlacklistRefresh).Info("blacklist refresh started")
	}

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()
	log.WithFields(logrus.Fields{
		"addr":      cfg.ListenAddr,
		"env":       cfg.Env,
		"blacklist": checker.Len(),
	}).Info("listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("shutting down")
		cancel()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown")
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}
}

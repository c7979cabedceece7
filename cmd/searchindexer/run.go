package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/insectengine/search.quarkus.io/internal/config"
	gitclient "github.com/insectengine/search.quarkus.io/internal/git"
	"github.com/insectengine/search.quarkus.io/internal/indexing"
	"github.com/insectengine/search.quarkus.io/internal/logfields"
	"github.com/insectengine/search.quarkus.io/internal/metrics"
	"github.com/insectengine/search.quarkus.io/internal/quarkusio"
	"github.com/insectengine/search.quarkus.io/internal/workspace"
)

// openCorpus materializes the working copy and builds the corpus resolver.
// The returned QuarkusIO owns the directory; Close releases it.
func openCorpus(cfg *config.Config) (*quarkusio.QuarkusIO, error) {
	var dir *workspace.CloseableDirectory
	var err error
	if cfg.Git.CloneDir != "" {
		dir, err = workspace.NewPersistent(cfg.Git.CloneDir)
	} else {
		dir, err = workspace.NewTemp("")
	}
	if err != nil {
		return nil, err
	}

	repo, err := gitclient.NewClient(cfg.Git).CloneOrOpen(dir.Path())
	if err != nil {
		_ = dir.Close()
		return nil, err
	}

	qio, err := quarkusio.New(cfg.Web.URI, dir, repo, cfg.Git.PagesBranch)
	if err != nil {
		_ = dir.Close()
		return nil, err
	}
	return qio, nil
}

func runIndex(cfg *config.Config, output, metricsAddr string) error {
	runID := uuid.NewString()
	start := time.Now()

	registry := prom.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(registry)
	if metricsAddr != "" {
		serveMetrics(metricsAddr, registry)
	}

	if output == "" {
		output = cfg.Index.Path
	}

	slog.Info("Starting index run", logfields.RunID(runID), logfields.URL(cfg.Git.URL), logfields.Path(output))

	qio, err := openCorpus(cfg)
	if err != nil {
		recorder.IncIndexOutcome("failed")
		return err
	}
	defer func() {
		if closeErr := qio.Close(); closeErr != nil {
			slog.Warn("Failed to release working copy", logfields.Error(closeErr))
		}
	}()
	qio.WithMetrics(recorder)

	index, err := indexing.NewSQLiteIndex(output)
	if err != nil {
		recorder.IncIndexOutcome("failed")
		return err
	}
	defer func() {
		if closeErr := index.Close(); closeErr != nil {
			slog.Warn("Failed to close index", logfields.Error(closeErr))
		}
	}()
	index.WithMetrics(recorder)

	ctx := context.Background()
	count := 0
	for g, err := range qio.Guides() {
		if err != nil {
			recorder.IncIndexOutcome("failed")
			return err
		}
		if err := index.Write(ctx, g); err != nil {
			recorder.IncIndexOutcome("failed")
			return err
		}
		count++
	}

	recorder.ObserveIndexRunDuration(time.Since(start))
	recorder.IncIndexOutcome("success")
	slog.Info("Index run complete",
		logfields.RunID(runID),
		logfields.Count(count),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

func runList(cfg *config.Config) error {
	qio, err := openCorpus(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := qio.Close(); closeErr != nil {
			slog.Warn("Failed to release working copy", logfields.Error(closeErr))
		}
	}()

	count := 0
	for g, err := range qio.Guides() {
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t%s\t%s\n", g.Version, g.Origin, g.URL, g.Title)
		count++
	}
	slog.Info("Listed guides", logfields.Count(count))
	return nil
}

// serveMetrics exposes the registry for the duration of the run. Index runs
// over the full corpus take long enough that scraping mid-run is useful.
func serveMetrics(addr string, registry *prom.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Warn("Metrics endpoint stopped", logfields.Error(err))
		}
	}()
}

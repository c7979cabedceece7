// Command searchindexer resolves the quarkus.io guide corpus and writes it
// to a local search index.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/insectengine/search.quarkus.io/internal/config"
	"github.com/insectengine/search.quarkus.io/internal/version"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Index struct {
		Output      string `short:"o" help:"Index database path (overrides config)"`
		MetricsAddr string `help:"Optional address to serve Prometheus metrics on during the run (e.g. :9090)"`
	} `cmd:"" help:"Resolve all guides and write the search index"`

	List struct {
	} `cmd:"" help:"Resolve all guides and print them without indexing"`

	Version struct {
	} `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&CLI)

	if ctx.Command() == "version" {
		fmt.Printf("searchindexer %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		return
	}

	cfg := loadConfig()
	setupLogging(cfg)

	var err error
	switch ctx.Command() {
	case "index":
		err = runIndex(cfg, CLI.Index.Output, CLI.Index.MetricsAddr)
	case "list":
		err = runList(cfg)
	}
	if err != nil {
		slog.Error("Run failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	if _, statErr := os.Stat(CLI.Config); os.IsNotExist(statErr) {
		// The defaults describe the real quarkus.io repository, so a config
		// file is only needed to override them.
		return config.Default()
	}
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	switch config.NormalizeLogLevel(cfg.Logging.Level) {
	case config.LogLevelDebug:
		level = slog.LevelDebug
	case config.LogLevelWarn:
		level = slog.LevelWarn
	case config.LogLevelError:
		level = slog.LevelError
	}
	if CLI.Verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if config.NormalizeLogFormat(cfg.Logging.Format) == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

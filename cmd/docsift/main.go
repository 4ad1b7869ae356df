// Command docsift classifies PDF documents and extracts content
// statistics from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/docsift/docsift"
	"github.com/docsift/docsift/cache"
	"github.com/docsift/docsift/config"
	"github.com/docsift/docsift/pipeline"
)

func main() {
	app := &cli.App{
		Name:  "docsift",
		Usage: "classify PDF documents and extract content statistics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "docsift.yaml",
				Usage: "configuration file (missing file uses defaults)",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "json",
				Usage: "output format: json or yaml",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "log errors only",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log per-page progress",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "classify",
				Usage:     "detect the document type from a page sample",
				ArgsUsage: "<file.pdf>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "sample-size", Usage: "pages to sample (overrides config)"},
				},
				Action: classifyAction,
			},
			{
				Name:      "stats",
				Usage:     "gather full-document content statistics",
				ArgsUsage: "<file.pdf>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "strategy", Usage: "counting strategy: stream or resources (overrides config)"},
					&cli.BoolFlag{Name: "with-text", Usage: "include concatenated document text"},
				},
				Action: statsAction,
			},
			{
				Name:      "analyze",
				Usage:     "classify and gather statistics in one run",
				ArgsUsage: "<file.pdf>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "sample-size", Usage: "pages to sample (overrides config)"},
					&cli.BoolFlag{Name: "no-cache", Usage: "skip the report cache even when enabled"},
				},
				Action: analyzeAction,
			},
			{
				Name:      "text",
				Usage:     "print the document's text to stdout",
				ArgsUsage: "<file.pdf>",
				Action:    textAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool("quiet") {
		level = slog.LevelError
	} else if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// setup resolves the input path, loads configuration and builds an
// analyzer chain with flags layered over the file settings.
func setup(c *cli.Context) (string, config.Config, *docsift.Analyzer, *slog.Logger, error) {
	if c.Args().Len() != 1 {
		return "", config.Config{}, nil, nil, fmt.Errorf("expected exactly one input file, got %d", c.Args().Len())
	}
	path := c.Args().First()
	logger := newLogger(c)

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return "", cfg, nil, nil, err
	}

	a := docsift.Open(path).
		SampleSize(cfg.SampleSize).
		Thresholds(cfg.Thresholds)
	if cfg.Strategy == "resources" {
		a = a.CountStrategy(docsift.StrategyResources)
	}

	if c.IsSet("sample-size") {
		a = a.SampleSize(c.Int("sample-size"))
	}
	if c.IsSet("strategy") {
		switch c.String("strategy") {
		case "stream":
			a = a.CountStrategy(docsift.StrategyStream)
		case "resources":
			a = a.CountStrategy(docsift.StrategyResources)
		default:
			return "", cfg, nil, nil, fmt.Errorf("unknown strategy %q", c.String("strategy"))
		}
	}
	if c.Bool("with-text") {
		a = a.WithText()
	}
	if c.Bool("verbose") {
		a = a.OnPage(func(ev pipeline.Event) error {
			logger.Debug("page processed",
				"page", ev.Page,
				"total", ev.TotalPages,
				"images", ev.Signal.Images,
				"vectors", ev.Signal.Vectors,
				"textItems", ev.Signal.TextItems)
			return nil
		})
	}

	return path, cfg, a, logger, nil
}

func classifyAction(c *cli.Context) error {
	_, _, a, logger, err := setup(c)
	if err != nil {
		return err
	}

	analysis, warnings, err := a.Classify()
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}
	logWarnings(logger, warnings)
	return emit(c, analysis)
}

func statsAction(c *cli.Context) error {
	_, _, a, logger, err := setup(c)
	if err != nil {
		return err
	}

	stats, warnings, err := a.Stats()
	if err != nil {
		return fmt.Errorf("statistics failed: %w", err)
	}
	logWarnings(logger, warnings)
	return emit(c, stats)
}

func analyzeAction(c *cli.Context) error {
	path, cfg, a, logger, err := setup(c)
	if err != nil {
		return err
	}

	useCache := cfg.Cache.Enabled && !c.Bool("no-cache")
	var (
		store *cache.Cache
		key   string
	)
	if useCache {
		store, key, err = openCache(cfg, path, logger)
		if err != nil {
			// A broken cache degrades to a plain run.
			logger.Warn("cache unavailable", "error", err)
		} else {
			defer store.Close()
			if data, ok := store.Get(key); ok {
				logger.Debug("cache hit", "key", key)
				var report docsift.Report
				if err := json.Unmarshal(data, &report); err == nil {
					return emit(c, report)
				}
				logger.Warn("discarding unreadable cache entry", "key", key)
			}
		}
	}

	report, warnings, err := a.Analyze()
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	logWarnings(logger, warnings)

	if store != nil {
		if data, err := json.Marshal(report); err == nil {
			if err := store.Put(key, data); err != nil {
				logger.Warn("caching report failed", "error", err)
			}
		}
	}
	return emit(c, report)
}

func textAction(c *cli.Context) error {
	_, _, a, logger, err := setup(c)
	if err != nil {
		return err
	}

	stats, warnings, err := a.WithText().Stats()
	if err != nil {
		return fmt.Errorf("text extraction failed: %w", err)
	}
	logWarnings(logger, warnings)

	fmt.Println(stats.Text)
	return nil
}

func openCache(cfg config.Config, path string, logger *slog.Logger) (*cache.Cache, string, error) {
	cachePath := cfg.Cache.Path
	if cachePath == "" {
		var err error
		cachePath, err = cache.DefaultPath()
		if err != nil {
			return nil, "", err
		}
	}
	store, err := cache.Open(cachePath)
	if err != nil {
		return nil, "", err
	}
	key, err := cache.FileKey(path)
	if err != nil {
		_ = store.Close()
		return nil, "", err
	}
	logger.Debug("cache open", "path", cachePath, "key", key)
	return store, key, nil
}

func logWarnings(logger *slog.Logger, warnings []docsift.Warning) {
	for _, w := range warnings {
		logger.Warn("analysis warning", "code", w.Code, "message", w.Message)
	}
}

// emit renders v to stdout in the requested format.
func emit(c *cli.Context, v any) error {
	switch c.String("format") {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		fmt.Println(string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		fmt.Print(string(data))
		return nil
	default:
		return fmt.Errorf("unknown output format %q", c.String("format"))
	}
}

package main

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/xtaci/hexprime/prime"
)

// runGenerateCommand handles the default action.
func runGenerateCommand(c *cli.Context) error {
	cfg, err := generateConfigFromContext(c)
	if err != nil {
		return exitWithExample(err.Error(), exampleGenerate)
	}
	logger, err := newLogger(cfg.LogLevel, c.App.ErrWriter)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	src, release, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer release()

	start := time.Now()
	g := prime.NewGenerator(src, prime.WithMaxAttempts(cfg.MaxAttempts), prime.WithLogger(logger))
	_, err = g.Generate(cfg.Count, func(p *big.Int) error {
		return writeResult(c.App.Writer, p)
	})
	stats := g.Stats()
	logger.Info("generation finished",
		zap.String("source", cfg.Source),
		zap.Uint64("accepted", stats.Accepted),
		zap.Uint64("candidates", stats.Candidates),
		zap.Duration("elapsed", time.Since(start)))
	if err != nil {
		return fmt.Errorf("generate %d primes: %w", cfg.Count, err)
	}
	return nil
}

// generateConfigFromContext layers the config file and explicitly set flags
// over the defaults.
func generateConfigFromContext(c *cli.Context) (generateConfig, error) {
	cfg := defaultGenerateConfig()
	if path := c.String("config"); path != "" {
		loaded, err := loadGenerateConfig(path, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if c.IsSet("count") {
		cfg.Count = c.Int("count")
	}
	if c.Args().Len() > 1 {
		return cfg, fmt.Errorf("expected at most one count argument, got %d", c.Args().Len())
	}
	if c.Args().Present() {
		n, err := strconv.Atoi(c.Args().First())
		if err != nil {
			return cfg, fmt.Errorf("invalid count %q", c.Args().First())
		}
		cfg.Count = n
	}
	if c.IsSet("max-attempts") {
		cfg.MaxAttempts = c.Int("max-attempts")
	}
	if c.IsSet("source") {
		cfg.Source = c.String("source")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.String("seed")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.normalize(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openSource returns the candidate source selected by cfg and a release func.
func openSource(cfg generateConfig) (prime.Source, func(), error) {
	switch cfg.Source {
	case sourceSecure:
		src := prime.NewSecureSource()
		return src, src.Destroy, nil
	case sourceRuntime:
		return prime.RuntimeSource{}, func() {}, nil
	case sourceSeeded:
		src, err := prime.NewSeededSource([]byte(cfg.Seed))
		if err != nil {
			return nil, nil, err
		}
		return src, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

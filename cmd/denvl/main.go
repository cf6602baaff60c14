// Command denvl parses a single file and prints its diagnostics.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/denvl-lang/denvl/internal/config"
	"github.com/denvl-lang/denvl/internal/format"
	"github.com/denvl-lang/denvl/internal/parser"
	"github.com/denvl-lang/denvl/internal/source"
)

var version = "dev"

func main() {
	app := &cli.Command{
		Name:      "denvl",
		Version:   version,
		Usage:     "parse a denvl source file and report its diagnostics",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-color", Usage: "disable colorized diagnostic output"},
			&cli.StringFlag{Name: "config", Usage: "path to a .denvl.yml config file"},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("denvl: building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	sessionID := uuid.NewString()

	args := cmd.Args().Slice()
	if len(args) != 1 {
		return fmt.Errorf("denvl: usage: denvl [flags] <file>")
	}
	filename := args[0]

	cfg, err := resolveConfig(cmd, filename)
	if err != nil {
		return fmt.Errorf("denvl: loading config: %w", err)
	}

	text, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("denvl: reading %s: %w", filename, err)
	}

	start := time.Now()
	src := source.New(string(text))
	_, diagnostics := parser.Parse(src)
	elapsed := time.Since(start)

	opts := []format.Option{format.WithConfig(cfg)}
	if cmd.Bool("no-color") {
		opts = append(opts, format.WithColor(false))
	}

	f := format.NewFormatter(src, filename, os.Stdout, opts...)
	f.RenderAll(os.Stdout, diagnostics)

	logger.Info("parsed file",
		zap.String("file", filename),
		zap.String("session_id", sessionID),
		zap.Int("diagnostics", len(diagnostics)),
		zap.Duration("elapsed", elapsed),
	)

	if len(diagnostics) > 0 {
		os.Exit(1)
	}
	return nil
}

func resolveConfig(cmd *cli.Command, filename string) (config.Config, error) {
	if path := cmd.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadFromDir(filepath.Dir(filename))
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return cfg.Build()
}

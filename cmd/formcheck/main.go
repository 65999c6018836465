package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/formrules/pkg/cli"
	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	var cfg cli.Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	log := logger.New(
		logger.WithEnvironment(cfg.Env, "formcheck"),
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(os.Stderr),
		logger.WithContextValue("file", cli.FileKey{}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.New(cfg, os.Stdout, log).Run(ctx, os.Args); err != nil {
		if errors.Is(err, cli.ErrInvalidState) {
			return 1
		}
		log.Error("formcheck failed", logger.Error(err))
		return 2
	}
	return 0
}

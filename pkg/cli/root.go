package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// New builds the formcheck root command. Output goes to out, diagnostics to log.
func New(cfg Config, out io.Writer, log *slog.Logger) *cli.Command {
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "json"
	}

	return &cli.Command{
		Name:                  "formcheck",
		Usage:                 "Validate state documents against declarative field rules",
		EnableShellCompletion: true,
		Writer:                out,
		Commands: []*cli.Command{
			validateCmd(cfg, out, log),
			rulesCmd(cfg, out, log),
			kindsCmd(cfg, out),
		},
	}
}

func rulesFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "rules",
		Aliases:  []string{"r"},
		Required: true,
		Usage:    "Path to the descriptor document (.yaml, .yml or .json)",
	}
}

func formatFlag(cfg Config) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   cfg.OutputFormat,
		Usage:   "Output format (json, yaml)",
	}
}

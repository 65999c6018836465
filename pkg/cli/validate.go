package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/formrules/pkg/loader"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/rules"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// FileResult is the printed outcome for one state file.
type FileResult struct {
	File   string `json:"file" yaml:"file"`
	Valid  bool   `json:"valid" yaml:"valid"`
	Errors any    `json:"errors" yaml:"errors"`
}

func validateCmd(cfg Config, out io.Writer, log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate state files against a descriptor document",
		ArgsUsage: "STATE_FILE...",
		Description: `Compiles the descriptor document and applies it to every state file.

By default every rule runs and failures are grouped per field. With --only,
the named rules run in the given order and failures are listed flat.`,
		Flags: []cli.Flag{
			rulesFlag(),
			formatFlag(cfg),
			&cli.StringSliceFlag{
				Name:  "only",
				Usage: "Run only the named rules, in order (e.g. --only EmailRequired --only EmailIsEmail)",
			},
			&cli.BoolFlag{
				Name:  "legacy",
				Usage: "Print grouped failures as validator kinds only",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd.String("format"))
			if err != nil {
				return err
			}
			files := cmd.Args().Slice()
			if len(files) == 0 {
				return ErrNoStateFiles
			}

			set, err := compileFile(cmd.String("rules"), log)
			if err != nil {
				return err
			}

			var list rules.RuleList
			only := cmd.StringSlice("only")
			if len(only) > 0 {
				if list, err = set.Select(only...); err != nil {
					return err
				}
			}

			results, err := validateFiles(ctx, cfg.Concurrency, files, log, func(state any) (rules.Aggregate, error) {
				if list != nil {
					return rules.Validate(list, state, nil)
				}
				return rules.Validate(set, state, nil)
			}, cmd.Bool("legacy"))
			if err != nil {
				return err
			}

			if err := write(out, format, results); err != nil {
				return err
			}
			for _, r := range results {
				if !r.Valid {
					return ErrInvalidState
				}
			}
			return nil
		},
	}
}

func compileFile(path string, log *slog.Logger) (*rules.RuleSet, error) {
	descriptors, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	set, err := rules.Compile(validator.DefaultRegistry(), descriptors, rules.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("rules compiled", logger.File(path), logger.Count(set.Len()))
	return set, nil
}

func validateFiles(
	ctx context.Context,
	limit int,
	files []string,
	log *slog.Logger,
	run func(state any) (rules.Aggregate, error),
	legacy bool,
) ([]FileResult, error) {
	results := make([]FileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fctx := context.WithValue(ctx, FileKey{}, file)

			state, err := loader.LoadStateFile(file)
			if err != nil {
				return err
			}
			agg, err := run(state)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			results[i] = fileResult(file, agg, legacy)
			log.DebugContext(fctx, "state validated", slog.Bool("valid", agg.IsValid()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func fileResult(file string, agg rules.Aggregate, legacy bool) FileResult {
	res := FileResult{File: file, Valid: agg.IsValid()}
	switch r := agg.(type) {
	case *rules.GroupedResult:
		if legacy {
			res.Errors = r.Kinds()
		} else {
			res.Errors = r.Errors
		}
	case *rules.OrderedResult:
		res.Errors = r.Errors
	}
	return res
}

package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func rulesCmd(cfg Config, out io.Writer, log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "List the rule names a descriptor document compiles to, in evaluation order",
		Flags: []cli.Flag{rulesFlag(), formatFlag(cfg)},
		Action: func(_ context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd.String("format"))
			if err != nil {
				return err
			}
			set, err := compileFile(cmd.String("rules"), log)
			if err != nil {
				return err
			}
			return write(out, format, set.Names())
		},
	}
}

func kindsCmd(cfg Config, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "kinds",
		Usage: "List the built-in validator kinds",
		Flags: []cli.Flag{formatFlag(cfg)},
		Action: func(_ context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd.String("format"))
			if err != nil {
				return err
			}
			return write(out, format, validator.DefaultRegistry().Kinds())
		},
	}
}

package main

import (
	"fmt"

	"github.com/nullsafe/safejson"
	libdiff "github.com/nullsafe/safejson/diff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := loadArg(cc, args[0], cfg.loadOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := loadArg(cc, args[1], cfg.loadOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var dOpts []libdiff.Option
	if cfg.useColor(cc.Out) {
		dOpts = append(dOpts, libdiff.WithColor())
	}
	d := safejson.Diff(a, b, dOpts...)
	if d == "" {
		return nil
	}
	if _, err := fmt.Fprintln(cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

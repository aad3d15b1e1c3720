package main

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/nullsafe/safejson/ir"
	"github.com/nullsafe/safejson/loader"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	to := loader.JSONFormat
	if cfg.To != "" {
		to, err = loader.ParseFormat(cfg.To)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		node, err := loadArg(cc, file, cfg.loadOpts()...)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		if !to.IsYAML() {
			if err := writeNode(cfg.MainConfig, cc.Out, node); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
			continue
		}
		v, ok := node.GetValue()
		if !ok {
			if _, err := cc.Out.Write([]byte("null\n")); err != nil {
				return err
			}
			continue
		}
		d, err := yaml.Marshal(ir.ToAny(v))
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}

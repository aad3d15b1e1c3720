package main

import (
	"fmt"

	"github.com/nullsafe/safejson"
	"github.com/nullsafe/safejson/loader"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch object, and a file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	target, err := loadArg(cc, args[1], cfg.loadOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var res *safejson.Node
	if cfg.Merge {
		res, err = safejson.ApplyMergePatch(target, p)
	} else {
		res, err = safejson.ApplyPatch(target, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	return writeNode(cfg.MainConfig, cc.Out, res)
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (*safejson.Node, error) {
	if cfg.String && cfg.File {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if cfg.File {
		return loadArg(cc, arg, cfg.loadOpts()...)
	}
	res, err := loader.Load([]byte(arg), cfg.loadOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	return res, nil
}

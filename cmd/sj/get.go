package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nullsafe/safejson"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		node, err := loadArg(cc, file, cfg.loadOpts()...)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		if err := writeNode(cfg.MainConfig, cc.Out, walkPath(node, path)); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

// walkPath resolves a dotted path like "endpoints.0.host". Integer
// segments index into arrays; every segment is a member key on
// objects. Lookups that miss keep walking and print as null.
func walkPath(n *safejson.Node, path string) *safejson.Node {
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			continue
		}
		if i, err := strconv.Atoi(seg); err == nil && !n.IsObject() {
			n = n.Index(i)
			continue
		}
		n = n.Get(seg)
	}
	return n
}

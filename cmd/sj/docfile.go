package main

import (
	"fmt"
	"io"

	"github.com/nullsafe/safejson"
	"github.com/nullsafe/safejson/encode"
	"github.com/nullsafe/safejson/loader"

	"github.com/scott-cotton/cli"
)

// loadArg loads a command argument: "-" reads the command input,
// anything else is a file path.
func loadArg(cc *cli.Context, path string, opts ...loader.Option) (*safejson.Node, error) {
	if path != "-" {
		return loader.LoadFile(path, opts...)
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return loader.Load(d, opts...)
}

func writeNode(cfg *MainConfig, w io.Writer, n *safejson.Node) error {
	v, ok := n.GetValue()
	if !ok {
		_, err := io.WriteString(w, "null\n")
		return err
	}
	return encode.Encode(v, w, cfg.encOpts(w)...)
}

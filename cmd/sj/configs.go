package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nullsafe/safejson/encode"
	"github.com/nullsafe/safejson/loader"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Indent  int  `cli:"name=indent desc='spaces per nesting level (default 2)'"`
	Compact bool `cli:"name=compact aliases=c desc='compact one-line output'"`
	Color   bool `cli:"name=color desc='force colored output'"`
	NoColor bool `cli:"name=nocolor desc='disable colored output'"`
	Verbose int  `cli:"name=v desc='log verbosity (0 disables logging)'"`

	InFormat *loader.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**loader.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := loader.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) loadOpts() []loader.Option {
	res := []loader.Option{
		loader.WithLogger(cfg.log()),
	}
	if cfg.InFormat != nil {
		res = append(res, loader.WithFormat(*cfg.InFormat))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Compact {
		res = append(res, encode.Compact())
	} else if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor decides the color tri-state: -nocolor wins, then -color,
// then whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m desc='apply as an RFC 7386 merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	To string `cli:"name=to desc='target format: json/j, yaml/y'"`

	Convert *cli.Command
}

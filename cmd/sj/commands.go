package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sj").
		WithSynopsis("sj [opts] command [opts]").
		WithDescription("sj is a tool for working with JSON and YAML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sjMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			ConvertCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <dotted.path> [files]").
		WithDescription("get document elements by dotted path; absent paths print null").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents, reformatted and in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <patch> <file>").
		WithDescription("apply an RFC 6902 patch, or with -m an RFC 7386 merge patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("convert").
		WithAliases("co").
		WithSynopsis("convert [-to format] [files]").
		WithDescription("convert documents between JSON and YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

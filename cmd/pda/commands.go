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
			Description: "input format: text/t, json/j, yaml/y (default from file extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "pda").
		WithSynopsis("pda [opts] command [opts]").
		WithDescription("pda is a tool for working with pushdown automata.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pdaMain(cfg, cc, args)
		}).
		WithSubs(
			EvalCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [opts] <definition> [tape-files | -s words...]").
		WithDescription(evalDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pdaEval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

const evalDescription = `eval decides which input tapes a pushdown automaton accepts.

Tape files hold one tape per line, symbols separated by whitespace; a
blank line is the empty word.  Without tape files, tapes are read from
standard input.  With -s, each remaining argument is a word.

A tape is accepted when some run of the automaton consumes all of it
and ends in an accepting state or with an empty stack.

-if filters the reports with an expression over the fields index,
input, length, accepted, steps, depth and error, for example

  pda eval -if 'not accepted' anbn.pda tapes.txt`

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [opts] [definitions]").
		WithDescription("view automaton definitions, re-encoded or as a formal description").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [opts] <definition-a> <definition-b>").
		WithDescription("diff automaton definitions, and with -tapes the tapes telling them apart").
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
		WithSynopsis("patch [opts] <patch> [definition]").
		WithDescription("patch an automaton definition with a JSON Patch (list) or a JSON Merge Patch (object)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

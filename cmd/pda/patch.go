package main

import (
	"fmt"

	"github.com/signadot/pushdown"
	"github.com/signadot/pushdown/encode"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	switch len(args) {
	case 1:
		args = append(args, "-")
	case 2:
	default:
		return fmt.Errorf("%w: patch requires a patch and at most one definition, got %v", cli.ErrUsage, args)
	}
	var p []byte
	if cfg.String {
		p = []byte(args[0])
	} else {
		if args[0] == "-" && args[1] == "-" {
			return fmt.Errorf("%w: patch and definition cannot both be stdin", cli.ErrUsage)
		}
		if p, err = readArg(cc, args[0]); err != nil {
			return err
		}
	}
	a, err := getAutomaton(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	b, err := pushdown.Patch(a, p)
	if err != nil {
		return err
	}
	w := cc.Out
	return encode.EncodeAutomaton(b, w, cfg.encOpts(w)...)
}

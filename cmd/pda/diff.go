package main

import (
	"context"
	"fmt"

	"github.com/signadot/pushdown"
	"github.com/signadot/pushdown/encode"
	"github.com/signadot/pushdown/eval"
	"github.com/signadot/pushdown/format"
	"github.com/signadot/pushdown/libdiff"
	"github.com/signadot/pushdown/tape"

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
	a, err := getAutomaton(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := getAutomaton(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	var tapes []*tape.Tape
	if cfg.Tapes != "" {
		// tapes may use symbols of either automaton
		if tapes, err = getTapes(cc, cfg.Tapes, nil); err != nil {
			return err
		}
	}
	res, err := pushdown.Diff(context.Background(), a, b, tapes, eval.MaxSteps(cfg.MaxSteps))
	if err != nil {
		return err
	}
	if !res.Changed() {
		return nil
	}
	w := cc.Out
	// the line diff and the reports of disagreeing tapes are always text
	encOpts := append(cfg.encOpts(w), encode.EncodeFormat(format.TextFormat))
	if cfg.Patch {
		if _, err := w.Write(append(res.MergePatch, '\n')); err != nil {
			return err
		}
	} else if res.Text.Changed() {
		d := res.Text
		if cfg.Reverse {
			d = libdiff.Reverse(d)
		}
		if err := encode.EncodeDiff(d, w, encOpts...); err != nil {
			return err
		}
	}
	if len(res.Disagree) != 0 {
		if _, err := fmt.Fprintf(w, "# %d of %d tapes tell %s and %s apart\n", len(res.Disagree), len(tapes), args[0], args[1]); err != nil {
			return err
		}
		for _, d := range res.Disagree {
			for _, side := range []struct {
				prefix string
				r      eval.Report
			}{{"- ", d.From}, {"+ ", d.To}} {
				if _, err := w.Write([]byte(side.prefix)); err != nil {
					return err
				}
				if err := encode.EncodeReports([]eval.Report{side.r}, w, encOpts...); err != nil {
					return err
				}
			}
		}
	}
	return cli.ExitCodeErr(1)
}

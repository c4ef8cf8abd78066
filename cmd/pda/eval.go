package main

import (
	"context"
	"fmt"

	"github.com/signadot/pushdown/encode"
	"github.com/signadot/pushdown/eval"
	"github.com/signadot/pushdown/ir"
	"github.com/signadot/pushdown/parse"
	"github.com/signadot/pushdown/tape"

	"github.com/scott-cotton/cli"
)

func pdaEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires a definition", cli.ErrUsage)
	}
	var filter *eval.Filter
	if cfg.If != "" {
		filter, err = eval.NewFilter(cfg.If)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	a, err := getAutomaton(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	tapes, err := evalTapes(cfg, cc, a.InputAlphabet(), args[1:])
	if err != nil {
		return err
	}
	w := cc.Out
	encOpts := cfg.encOpts(w)
	opts := []eval.Option{
		eval.MaxSteps(cfg.MaxSteps),
		eval.Parallel(cfg.Parallel),
	}
	var tracer *encode.Tracer
	if cfg.Trace {
		tracer = encode.NewTracer(w, encOpts...)
		opts = append(opts, eval.WithObserver(tracer))
	}
	reports, err := eval.Batch(context.Background(), a, tapes, opts...)
	if err != nil {
		return err
	}
	if tracer != nil {
		if err := tracer.Err(); err != nil {
			return err
		}
	}
	if filter != nil {
		kept := reports[:0]
		for _, r := range reports {
			ok, err := filter.Match(r)
			if err != nil {
				return err
			}
			if ok {
				kept = append(kept, r)
			}
		}
		reports = kept
	}
	if err := encode.EncodeReports(reports, w, encOpts...); err != nil {
		return err
	}
	if !cfg.Strict {
		return nil
	}
	for i := range reports {
		if !reports[i].Accepted {
			return cli.ExitCodeErr(1)
		}
	}
	return nil
}

// evalTapes gives the tapes named by args: words with -s, otherwise
// tape files, standard input when there are none.
func evalTapes(cfg *EvalConfig, cc *cli.Context, alphabet *ir.Alphabet, args []string) ([]*tape.Tape, error) {
	if cfg.String {
		if len(args) == 0 {
			args = []string{""}
		}
		res := make([]*tape.Tape, len(args))
		for i, w := range args {
			t, err := parse.ParseTape(w, alphabet)
			if err != nil {
				return nil, fmt.Errorf("word %q: %w", w, err)
			}
			res[i] = t
		}
		return res, nil
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var res []*tape.Tape
	for _, path := range args {
		ts, err := getTapes(cc, path, alphabet)
		if err != nil {
			return nil, err
		}
		res = append(res, ts...)
	}
	return res, nil
}

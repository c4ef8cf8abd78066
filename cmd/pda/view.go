package main

import (
	"fmt"
	"io"

	"github.com/signadot/pushdown/encode"
	"github.com/signadot/pushdown/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	w := cc.Out
	for i, path := range args {
		a, err := getAutomaton(cfg.MainConfig, cc, path)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := viewAutomaton(cfg, w, a); err != nil {
			return fmt.Errorf("error encoding %s: %w", path, err)
		}
	}
	return nil
}

func viewAutomaton(cfg *ViewConfig, w io.Writer, a *ir.Automaton) error {
	if cfg.Describe {
		_, err := io.WriteString(w, a.String())
		return err
	}
	opts := append(cfg.encOpts(w), encode.EncodeComments(cfg.Comments))
	return encode.EncodeAutomaton(a, w, opts...)
}

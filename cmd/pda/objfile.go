package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/pushdown/format"
	"github.com/signadot/pushdown/ir"
	"github.com/signadot/pushdown/parse"
	"github.com/signadot/pushdown/tape"

	"github.com/scott-cotton/cli"
)

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getAutomaton(cfg *MainConfig, cc *cli.Context, path string) (*ir.Automaton, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	a, err := parse.Parse(d, cfg.parseOpts(path)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return a, nil
}

// getTapes reads the tapes in path.  Tape files are text unless their
// extension says otherwise; -I, -y and -j apply to definitions only.
func getTapes(cc *cli.Context, path string, alphabet *ir.Alphabet) ([]*tape.Tape, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	opts := []parse.ParseOption{}
	if path != "-" {
		opts = append(opts, parse.ParseFormat(format.FromExt(filepath.Ext(path))))
	}
	ts, err := parse.ParseTapes(d, alphabet, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding tapes %s: %w", path, err)
	}
	return ts, nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/pushdown/encode"
	"github.com/signadot/pushdown/format"
	"github.com/signadot/pushdown/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.TextFormat, false
}

// parseOpts gives the options for reading path.  Without -I, -y or -j
// the format follows the file extension.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	f, ok := cfg.flagFormat()
	if cfg.InFormat != nil {
		f, ok = *cfg.InFormat, true
	}
	if !ok && path != "-" {
		f = format.FromExt(filepath.Ext(path))
	}
	return []parse.ParseOption{parse.ParseFormat(f)}
}

func (cfg *MainConfig) outFormat() format.Format {
	f, _ := cfg.flagFormat()
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type EvalConfig struct {
	*MainConfig
	String   bool   `cli:"name=s desc='arguments after the definition are words, not files'"`
	Trace    bool   `cli:"name=trace desc='print each configuration of the search'"`
	MaxSteps int    `cli:"name=maxSteps aliases=n desc='fail a tape after this many transitions (0: no limit)'"`
	Parallel int    `cli:"name=p aliases=parallel desc='number of tapes evaluated at once (0: one per cpu)'"`
	If       string `cli:"name=if desc='only report tapes matching this expression'"`
	Strict   bool   `cli:"name=strict desc='exit 1 if any reported tape is not accepted'"`

	Eval *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Describe bool `cli:"name=describe aliases=formal desc='print the formal description'"`
	Comments bool `cli:"name=c desc='label the sections of text definitions'"`

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse  bool   `cli:"name=r desc='reverse the diff'"`
	Tapes    string `cli:"name=tapes desc='file of tapes to evaluate with both automata'"`
	Patch    bool   `cli:"name=patch desc='print a merge patch rather than a line diff'"`
	MaxSteps int    `cli:"name=maxSteps aliases=n desc='fail a tape after this many transitions (0: no limit)'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg is the patch itself, not a file'"`

	Patch *cli.Command
}

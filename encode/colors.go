package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	StateColor
	SymbolColor
	EmptyColor
	SepColor
	HeaderColor
	AcceptColor
	RejectColor
	ErrorColor
	InsertColor
	DeleteColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

// NewColors gives the default palette.  The palette colors regardless
// of whether the output is a terminal; callers decide whether to use
// it.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	set := func(a ColorAttr, c *color.Color) {
		c.EnableColor()
		colors.Map[a] = c.SprintfFunc()
	}
	set(CommentColor, color.New(color.FgBlue))
	set(StateColor, color.RGB(196, 96, 16))
	set(SymbolColor, color.RGB(128, 216, 236))
	set(EmptyColor, color.RGB(168, 0, 196))
	set(SepColor, color.RGB(96, 96, 96))
	set(HeaderColor, color.RGB(74, 92, 138).Add(color.Bold))
	set(AcceptColor, color.RGB(8, 196, 16))
	set(RejectColor, color.RGB(196, 128, 128))
	set(ErrorColor, color.New(color.FgRed, color.Bold))
	set(InsertColor, color.New(color.FgGreen))
	set(DeleteColor, color.New(color.FgRed))
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

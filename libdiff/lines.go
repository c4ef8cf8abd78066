// Package libdiff computes line oriented differences between texts.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+ "
	case Delete:
		return "- "
	default:
		return "  "
	}
}

type Line struct {
	Op   Op
	Text string
}

// Diff is the sequence of lines turning one text into another.
type Diff struct {
	Lines []Line
}

// Lines diffs from and to line by line.  Lines are compared with their
// terminating newline, so a missing final newline changes the last
// line.
func Lines(from, to string) *Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	res := &Diff{}
	for i := range diffs {
		d := &diffs[i]
		var op Op
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		for _, ln := range splitLines(d.Text) {
			res.Lines = append(res.Lines, Line{Op: op, Text: ln})
		}
	}
	return res
}

// Changed reports whether the texts differ.
func (d *Diff) Changed() bool {
	for i := range d.Lines {
		if d.Lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Counts gives the number of inserted and deleted lines.
func (d *Diff) Counts() (ins, del int) {
	for i := range d.Lines {
		switch d.Lines[i].Op {
		case Insert:
			ins++
		case Delete:
			del++
		}
	}
	return
}

func (d *Diff) String() string {
	b := &strings.Builder{}
	for i := range d.Lines {
		ln := &d.Lines[i]
		b.WriteString(ln.Op.Prefix())
		b.WriteString(ln.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

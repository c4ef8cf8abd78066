package encode

import (
	"io"
	"strings"

	"github.com/signadot/pushdown/libdiff"
)

// EncodeDiff writes d as text, one line per diff line.
func EncodeDiff(d *libdiff.Diff, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	b := &strings.Builder{}
	for i := range d.Lines {
		ln := &d.Lines[i]
		s := ln.Op.Prefix() + ln.Text
		switch ln.Op {
		case libdiff.Insert:
			s = es.Color(InsertColor, s)
		case libdiff.Delete:
			s = es.Color(DeleteColor, s)
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return writeString(w, b.String())
}

package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/pushdown/eval"
	"github.com/signadot/pushdown/format"

	"github.com/goccy/go-yaml"
)

// EncodeReports writes rs.  The text form is one line per report: the
// verdict followed by the input.
func EncodeReports(rs []eval.Report, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch es.format {
	case format.TextFormat:
		b := &strings.Builder{}
		for i := range rs {
			b.WriteString(reportLine(&rs[i], es))
			b.WriteByte('\n')
		}
		return writeString(w, b.String())
	case format.YAMLFormat:
		if rs == nil {
			rs = []eval.Report{}
		}
		d, err := yaml.Marshal(rs)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
		if rs == nil {
			rs = []eval.Report{}
		}
		return writeJSON(w, rs)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func reportLine(r *eval.Report, es *EncState) string {
	in := r.Input
	if in == "" {
		in = es.Color(EmptyColor, "ε")
	}
	switch {
	case r.Error != "":
		return fmt.Sprintf("%s  %s  %s", es.Color(ErrorColor, "error "), in, es.Color(CommentColor, "# "+r.Error))
	case r.Accepted:
		return fmt.Sprintf("%s  %s", es.Color(AcceptColor, "accept"), in)
	default:
		return fmt.Sprintf("%s  %s", es.Color(RejectColor, "reject"), in)
	}
}

package token

import (
	"fmt"
	"io"
)

func PrintLines(w io.Writer, lines []Line, msg string) {
	fmt.Fprintf(w, "%s lines:\n", msg)
	for i := range lines {
		ln := &lines[i]
		fmt.Fprintf(w, "\t%d:", ln.Pos.Line()+1)
		for j := range ln.Tokens {
			fmt.Fprintf(w, " `%s`", ln.Tokens[j].Text)
		}
		fmt.Fprintln(w)
	}
}

package libdiff

// Reverse gives the diff from the "to" text back to the "from" text.
// Within each run of changed lines deletions come first.
func Reverse(d *Diff) *Diff {
	res := &Diff{Lines: make([]Line, 0, len(d.Lines))}
	var ins, del []Line
	flush := func() {
		res.Lines = append(res.Lines, del...)
		res.Lines = append(res.Lines, ins...)
		ins, del = ins[:0], del[:0]
	}
	for _, ln := range d.Lines {
		switch ln.Op {
		case Insert:
			del = append(del, Line{Op: Delete, Text: ln.Text})
		case Delete:
			ins = append(ins, Line{Op: Insert, Text: ln.Text})
		default:
			flush()
			res.Lines = append(res.Lines, ln)
		}
	}
	flush()
	return res
}

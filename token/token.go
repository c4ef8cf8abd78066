package token

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// CommentStart begins a comment running to the end of the line.
const CommentStart = '#'

type Token struct {
	Text string
	Pos  *Pos
}

// Line is a non-blank line of a document.
type Line struct {
	Tokens []Token
	Pos    *Pos
}

// Texts gives the text of each token of the line.
func (l *Line) Texts() []string {
	res := make([]string, len(l.Tokens))
	for i := range l.Tokens {
		res[i] = l.Tokens[i].Text
	}
	return res
}

// End is the position just after the last token of the line.
func (l *Line) End() *Pos {
	if len(l.Tokens) == 0 {
		return l.Pos
	}
	last := &l.Tokens[len(l.Tokens)-1]
	return last.Pos.D.Pos(last.Pos.I + len(last.Text))
}

// Tokenize splits src into lines of tokens, dropping comments and
// blank lines.
func Tokenize(src []byte) ([]Line, error) {
	return tokenize(src, false)
}

// TokenizeLines is like Tokenize but keeps a Line for every line of
// src, including blank and comment-only ones.  A trailing newline does
// not start another line.
func TokenizeLines(src []byte) ([]Line, error) {
	if n := len(src); n != 0 && src[n-1] == '\n' {
		src = src[:n-1]
	}
	return tokenize(src, true)
}

func tokenize(src []byte, keepBlank bool) ([]Line, error) {
	doc := newPosDoc(src)
	var res []Line
	off := 0
	for off <= len(src) {
		end := bytes.IndexByte(src[off:], '\n')
		if end < 0 {
			end = len(src)
		} else {
			end += off
		}
		ln, err := tokenizeLine(doc, off, end)
		if err != nil {
			return nil, err
		}
		if keepBlank || len(ln.Tokens) != 0 {
			res = append(res, ln)
		}
		off = end + 1
	}
	return res, nil
}

func tokenizeLine(doc *PosDoc, start, end int) (Line, error) {
	d := doc.d
	ln := Line{Pos: doc.Pos(start)}
	i := start
	tokStart := -1
	flush := func(at int) {
		if tokStart < 0 {
			return
		}
		ln.Tokens = append(ln.Tokens, Token{
			Text: string(d[tokStart:at]),
			Pos:  doc.Pos(tokStart),
		})
		tokStart = -1
	}
	for i < end {
		r, sz := utf8.DecodeRune(d[i:end])
		switch {
		case r == utf8.RuneError && sz <= 1:
			return ln, NewTokenizeErr(ErrBadUTF8, doc.Pos(i))
		case r == CommentStart:
			flush(i)
			return ln, nil
		case unicode.IsSpace(r):
			flush(i)
		case unicode.IsControl(r):
			return ln, NewTokenizeErr(ErrControl, doc.Pos(i))
		default:
			if tokStart < 0 {
				tokStart = i
			}
		}
		i += sz
	}
	flush(end)
	return ln, nil
}

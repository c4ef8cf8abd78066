// Package token splits automaton definitions and tape lists into lines
// of whitespace separated tokens.
//
// A '#' starts a comment running to the end of the line.  [Tokenize] drops
// lines that are blank once comments are removed.  Every token and
// line records its [Pos] so that readers can report errors by line and
// column.  [TokenizeLines] keeps blank lines, for readers where each line
// is a record and an empty one is meaningful.
package token

package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Index bool
	Eval  bool
	Batch bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PDA_DEBUG_PARSE")
	d.Index = boolEnv("PDA_DEBUG_INDEX")
	d.Eval = boolEnv("PDA_DEBUG_EVAL")
	d.Batch = boolEnv("PDA_DEBUG_BATCH")
	d.Patch = boolEnv("PDA_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Index() bool {
	return d.Index
}
func Eval() bool {
	return d.Eval
}
func Batch() bool {
	return d.Batch
}
func Patch() bool {
	return d.Patch
}

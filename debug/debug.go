package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Parse    bool
	Merge    bool
	Batch    bool
	Lsp      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("PDX_DEBUG_TOKENIZE")
	d.Parse = boolEnv("PDX_DEBUG_PARSE")
	d.Merge = boolEnv("PDX_DEBUG_MERGE")
	d.Batch = boolEnv("PDX_DEBUG_BATCH")
	d.Lsp = boolEnv("PDX_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
func Batch() bool {
	return d.Batch
}
func Lsp() bool {
	return d.Lsp
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}

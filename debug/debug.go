package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Selector bool
	Diff     bool
	Decode   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Selector = boolEnv("VELLUM_DEBUG_SELECTOR")
	d.Diff = boolEnv("VELLUM_DEBUG_DIFF")
	d.Decode = boolEnv("VELLUM_DEBUG_DECODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Selector() bool {
	return d.Selector
}
func Diff() bool {
	return d.Diff
}
func Decode() bool {
	return d.Decode
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte("\n"))
}

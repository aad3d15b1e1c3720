package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Patch  bool
	Loader bool
}

var d *debug

func init() {
	d = &debug{}
	all := boolEnv("SJ_DEBUG_ALL")
	d.Parse = all || boolEnv("SJ_DEBUG_PARSE")
	d.Patch = all || boolEnv("SJ_DEBUG_PATCH")
	d.Loader = all || boolEnv("SJ_DEBUG_LOADER")
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
func Patch() bool {
	return d.Patch
}
func Loader() bool {
	return d.Loader
}

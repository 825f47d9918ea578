package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Path  bool
	Save  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TOMLER_DEBUG_PARSE")
	d.Path = boolEnv("TOMLER_DEBUG_PATH")
	d.Save = boolEnv("TOMLER_DEBUG_SAVE")
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
func Path() bool {
	return d.Path
}
func Save() bool {
	return d.Save
}

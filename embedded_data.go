package hue

import (
	"embed"
	"io/fs"
)

//go:embed syntax/*.toml
var syntaxData embed.FS

// EmbeddedRules returns the rule files shipped with hue, one per rule name,
// at the root of the returned filesystem.
func EmbeddedRules() fs.FS {
	sub, err := fs.Sub(syntaxData, "syntax")
	if err != nil {
		panic(err)
	}
	return sub
}

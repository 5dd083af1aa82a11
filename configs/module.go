package configs

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/cmds"
)

type Module struct {
	dscope.Module
}

// Schema constrains what the config files may contain.
const Schema = `
repl?: {
	prompt?: string
}
`

var configPaths = cmds.Collect[string]("-config")

func (Module) Loader() Loader {
	paths := slices.Clone(*configPaths)

	if home, err := os.UserHomeDir(); err == nil {
		defaultPath := filepath.Join(home, ".config", "lox", "config.cue")
		if _, err := os.Stat(defaultPath); err == nil {
			paths = append(paths, defaultPath)
		}
	}

	return NewLoader(paths, Schema)
}

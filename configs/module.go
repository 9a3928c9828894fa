package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/minimav/intcode/logs"
	"github.com/minimav/intcode/modes"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

//go:embed schema.cue
var Schema string

var filenames = []string{
	"intcode.cue",
	".intcode.cue",
}

func (Module) Loader(
	mode modes.Mode,
	logger logs.Logger,
) Loader {
	if mode == modes.ModeDevelopment {
		// tests must not depend on files of the host
		return NewLoader(nil, Schema)
	}

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	paths := discover(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return NewLoader(paths, Schema)
}

func discover(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

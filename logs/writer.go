package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/minimav/intcode/cmds"
)

// Writer receives the terminal log lines. Program outputs own stdout, so
// logs go to stderr unless -log-file names a file.
type Writer io.Writer

var logFile = cmds.Var[string]("-log-file")

func (Module) Writer() Writer {
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			return f
		}
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
	}
	return os.Stderr
}

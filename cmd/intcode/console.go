package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/minimav/intcode/intcode"
)

type console struct {
	*readline.Instance
}

// newConsole returns nil when stdin is not a terminal.
func newConsole() (*console, error) {
	if !readline.IsTerminal(int(os.Stdin.Fd())) {
		return nil, nil
	}
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".intcode_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "input> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, err
	}
	return &console{
		Instance: rl,
	}, nil
}

func (c *console) ReadWord() (intcode.Word, error) {
	for {
		line, err := c.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "not a word: %s\n", line)
			continue
		}
		return v, nil
	}
}

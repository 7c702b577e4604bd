package runners

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chzyer/readline"
	"github.com/litbook/litbook/logs"
)

// Console is the interactive channel a suspended breakpoint talks to.
type Console interface {
	Readline(prompt string) (string, error)
	Printf(format string, args ...any)
}

func (Module) Console(
	writer logs.Writer,
) Console {
	return &terminalConsole{
		writer: writer,
	}
}

// terminalConsole wraps readline, opened lazily so runs without
// breakpoints never touch the terminal.
type terminalConsole struct {
	writer  logs.Writer
	once    sync.Once
	rl      *readline.Instance
	initErr error
}

var _ Console = new(terminalConsole)

func (c *terminalConsole) Readline(prompt string) (string, error) {
	c.once.Do(func() {
		var historyFile string
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".litbook_history")
		}
		c.rl, c.initErr = readline.NewEx(&readline.Config{
			Prompt:      prompt,
			HistoryFile: historyFile,
		})
	})
	if c.initErr != nil {
		return "", c.initErr
	}
	c.rl.SetPrompt(prompt)
	return c.rl.Readline()
}

func (c *terminalConsole) Printf(format string, args ...any) {
	fmt.Fprintf(c.writer, format, args...)
}

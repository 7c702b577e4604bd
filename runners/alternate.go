package runners

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/litbook/litbook/bookconfigs"
	"github.com/litbook/litbook/logs"
)

// RunAlternate pipes the segment source to the configured external
// interpreter. Alternate segments never share state with anything, each
// invocation is a fresh process.
type RunAlternate func(ctx context.Context, source string, startLine int) *Result

func (Module) RunAlternate(
	command bookconfigs.AltCommand,
	timeout bookconfigs.TimeoutSeconds,
	timeZone bookconfigs.TimeZone,
	logger logs.Logger,
) RunAlternate {
	return func(ctx context.Context, source string, startLine int) *Result {
		res := new(Result)
		if len(command) == 0 {
			res.Failure = RuntimeFailure{
				Kind: "Error",
				Msg:  "no alternate interpreter configured",
				Line: startLine,
			}
			return res
		}

		ctx, cancel := context.WithTimeout(ctx, time.Duration(float64(timeout)*float64(time.Second)))
		defer cancel()

		cmd := exec.CommandContext(ctx, command[0], command[1:]...)
		cmd.Stdin = strings.NewReader(source)
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		cmd.Env = append(os.Environ(), "TZ="+string(timeZone))

		err := cmd.Run()

		if ctx.Err() == context.DeadlineExceeded {
			res.Failure = TimeoutError{
				Seconds: float64(timeout),
				Line:    startLine,
			}
			return res
		}
		if err != nil {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = err.Error()
			} else if i := strings.LastIndexByte(msg, '\n'); i >= 0 {
				// the last stderr line carries the interpreter's own
				// one-line summary
				msg = msg[i+1:]
			}
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				logger.Debug("alternate interpreter failed",
					"command", []string(command),
					"exit", exitErr.ExitCode(),
				)
			}
			res.Failure = RuntimeFailure{
				Kind: "Error",
				Msg:  msg,
				Line: startLine,
			}
			return res
		}

		res.Visible = stdout.String()
		return res
	}
}

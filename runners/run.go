package runners

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/litbook/litbook/bookconfigs"
	"github.com/litbook/litbook/logs"
	"github.com/litbook/litbook/tracks"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// fileOptions enables the dialect the documents are written in: top-level
// control flow, reassignment of globals across segments, set literals and
// recursion.
var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

const runLocalKey = "litbook.run"

// runState is the per-run side of the worker thread, reachable from
// builtins through the thread locals.
type runState struct {
	visible  *bytes.Buffer
	debug    io.Writer
	console  Console
	track    *tracks.Track
	deadline *deadline
}

func currentRun(thread *starlark.Thread) *runState {
	state, _ := thread.Local(runLocalKey).(*runState)
	return state
}

// Run executes a synthesized program produced by Track.Extend against the
// track's persistent globals, under the configured wall-clock deadline.
// The worker is a cancellable interpreter thread: on expiry the
// supervising timer cancels it, the run reports a TimeoutError and any
// partial output is discarded.
type Run func(ctx context.Context, tctx *tracks.Context, track *tracks.Track, program string) *Result

func (Module) Run(
	timeout bookconfigs.TimeoutSeconds,
	rootDir bookconfigs.RootDir,
	console Console,
	writer logs.Writer,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, tctx *tracks.Context, track *tracks.Track, program string) *Result {
		res := new(Result)

		file, err := fileOptions.Parse(track.Name, program, 0)
		if err != nil {
			res.Failure = classify(err, track)
			return res
		}

		installBuiltins(tctx, track, rootDir)

		visible := new(bytes.Buffer)
		state := &runState{
			visible:  visible,
			debug:    writer,
			console:  console,
			track:    track,
			deadline: newDeadline(time.Duration(float64(timeout) * float64(time.Second))),
		}

		thread := &starlark.Thread{
			Name: track.Name,
			Print: func(_ *starlark.Thread, msg string) {
				visible.WriteString(msg)
				visible.WriteByte('\n')
			},
		}
		thread.SetLocal(runLocalKey, state)

		// one chunk per top-level statement: each statement's bindings
		// are exported to the track globals before the next one runs, so
		// a suspended breakpoint can inspect names defined earlier in the
		// same segment
		done := make(chan error, 1)
		go func() {
			done <- func() error {
				for _, stmt := range file.Stmts {
					chunk := &syntax.File{
						Options: fileOptions,
						Path:    file.Path,
						Stmts:   []syntax.Stmt{stmt},
					}
					if err := starlark.ExecREPLChunk(chunk, thread, track.Globals); err != nil {
						return err
					}
				}
				return nil
			}()
		}()

		var execErr error
		timedOut := false
		select {
		case execErr = <-done:
		case <-state.deadline.expired:
			timedOut = true
			thread.Cancel("deadline exceeded")
			<-done
		case <-ctx.Done():
			thread.Cancel("interrupted")
			<-done
			execErr = ctx.Err()
		}
		state.deadline.Stop()

		if timedOut {
			logger.DebugContext(ctx, "segment timed out",
				"track", track.Name,
				"timeout", float64(timeout),
			)
			res.Failure = TimeoutError{
				Seconds: float64(timeout),
			}
			return res
		}

		res.Visible = visible.String()
		if execErr != nil {
			res.Failure = classify(execErr, track)
		}
		return res
	}
}

// RunIsolated executes source as a standalone one-shot program: no
// inherited state, no effect on any track. Positions still remap to the
// document through a throwaway track.
type RunIsolated func(ctx context.Context, tctx *tracks.Context, source string, startLine int) *Result

func (Module) RunIsolated(
	run Run,
) RunIsolated {
	return func(ctx context.Context, tctx *tracks.Context, source string, startLine int) *Result {
		track := tracks.NewTrack(tctx.Name)
		program := track.Extend([]tracks.Chunk{
			{
				Source: source,
				Origin: startLine,
			},
		})
		return run(ctx, tctx, track, program)
	}
}

// CheckSyntax parses source without ever executing it, for
// expect-syntax-error fences. The source is padded so reported positions
// are document lines directly.
type CheckSyntax func(name, source string, startLine int) *Result

func (Module) CheckSyntax() CheckSyntax {
	return func(name, source string, startLine int) *Result {
		res := new(Result)
		padded := padLines(startLine-1) + source
		_, err := fileOptions.Parse(name, padded, 0)
		if err != nil {
			res.Failure = classify(err, nil)
		}
		return res
	}
}

func padLines(n int) string {
	if n <= 0 {
		return ""
	}
	return string(bytes.Repeat([]byte{'\n'}, n))
}

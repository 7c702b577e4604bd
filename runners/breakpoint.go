package runners

import (
	"strings"

	"go.starlark.net/starlark"
)

// breakpointLoop suspends the interpreter thread at the call site and
// hands control to the operator console. The run deadline is paused for
// the whole suspension, interactive time is free.
func breakpointLoop(thread *starlark.Thread) error {
	state := currentRun(thread)
	if state == nil || state.console == nil {
		return nil
	}

	state.deadline.Pause()
	defer state.deadline.Resume()

	frame := thread.CallFrame(1)
	state.console.Printf("suspended at %s line %d\n",
		state.track.Name, state.track.DocLine(int(frame.Pos.Line)))

	for {
		line, err := state.console.Readline("(litbook) ")
		if err != nil { // Ctrl-C or Ctrl-D
			return nil
		}
		line = strings.TrimSpace(line)

		switch {

		case line == "":

		case line == "c" || line == "continue":
			return nil

		case line == "where":
			state.console.Printf("%s line %d\n",
				state.track.Name, state.track.DocLine(int(frame.Pos.Line)))

		case line == "bt":
			depth := thread.CallStackDepth()
			// skip the breakpoint builtin's own frame
			for i := 1; i < depth; i++ {
				f := thread.CallFrame(i)
				name := f.Name
				if name == "" {
					name = "<toplevel>"
				}
				line := int(f.Pos.Line)
				if f.Pos.Filename() == state.track.Name {
					line = state.track.DocLine(line)
				}
				state.console.Printf("  %s line %d\n", name, line)
			}

		case strings.HasPrefix(line, "p "):
			expr := strings.TrimSpace(strings.TrimPrefix(line, "p "))
			value, err := starlark.EvalOptions(fileOptions, thread, "<breakpoint>", expr, state.track.Globals)
			if err != nil {
				state.console.Printf("error: %v\n", err)
				continue
			}
			state.console.Printf("%s\n", value.String())

		default:
			state.console.Printf("commands: c(ontinue), where, bt, p <expr>\n")
		}
	}
}

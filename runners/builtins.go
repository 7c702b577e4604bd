package runners

import (
	"fmt"
	"time"

	"github.com/litbook/litbook/bookconfigs"
	"github.com/litbook/litbook/tracks"
	"go.starlark.net/starlark"
)

// installBuiltins predeclares the document-facing helpers in the track
// globals. Idempotent: a track that already carries them is left alone,
// so user reassignments of other names survive across extends.
func installBuiltins(tctx *tracks.Context, track *tracks.Track, rootDir bookconfigs.RootDir) {
	if _, ok := track.Globals["pprint"]; ok {
		return
	}

	track.Globals["pprint"] = starlark.NewBuiltin("pprint", func(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		state := currentRun(thread)
		for _, arg := range args {
			pprintTo(state.visible, arg)
		}
		return starlark.None, nil
	})

	track.Globals["debug"] = starlark.NewBuiltin("debug", func(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		state := currentRun(thread)
		for i, arg := range args {
			if i > 0 {
				fmt.Fprint(state.debug, " ")
			}
			if s, ok := starlark.AsString(arg); ok {
				fmt.Fprint(state.debug, s)
			} else {
				fmt.Fprint(state.debug, arg.String())
			}
		}
		fmt.Fprintln(state.debug)
		return starlark.None, nil
	})

	track.Globals["help"] = starlark.NewBuiltin("help", func(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var value starlark.Value
		if err := starlark.UnpackPositionalArgs("help", args, kwargs, 1, &value); err != nil {
			return nil, err
		}
		state := currentRun(thread)
		switch value := value.(type) {
		case *starlark.Function:
			fmt.Fprintf(state.visible, "Help on function %s:\n", value.Name())
			if doc := value.Doc(); doc != "" {
				fmt.Fprintln(state.visible, doc)
			}
		case *starlark.Builtin:
			fmt.Fprintf(state.visible, "Help on built-in function %s\n", value.Name())
		default:
			fmt.Fprintf(state.visible, "%s value\n", value.Type())
		}
		return starlark.None, nil
	})

	track.Globals["breakpoint"] = starlark.NewBuiltin("breakpoint", func(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return starlark.None, breakpointLoop(thread)
	})

	track.Globals["rand"] = toValue(func() float64 {
		return tctx.Rand.Float64()
	})

	track.Globals["randint"] = starlark.NewBuiltin("randint", func(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var lo, hi int
		if err := starlark.UnpackPositionalArgs("randint", args, kwargs, 2, &lo, &hi); err != nil {
			return nil, err
		}
		if hi < lo {
			return nil, fmt.Errorf("randint: empty range %d..%d", lo, hi)
		}
		return starlark.MakeInt(lo + tctx.Rand.Intn(hi-lo+1)), nil
	})

	track.Globals["now"] = toValue(func() string {
		return time.Now().In(tctx.Location).Format("2006-01-02 15:04:05 MST")
	})

	track.Globals["book"] = toValue(map[string]any{
		"name":     track.Name,
		"root_dir": string(rootDir),
	})
}

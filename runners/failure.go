package runners

import (
	"errors"
	"regexp"
	"strings"

	"github.com/litbook/litbook/tracks"
	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// classify maps an interpreter error to a failure value with the position
// translated to document coordinates. A nil track means positions are
// document lines already.
func classify(err error, track *tracks.Track) error {

	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		line := 0
		// innermost frame that belongs to the document program
		for i := len(evalErr.CallStack) - 1; i >= 0; i-- {
			frame := evalErr.CallStack[i]
			if l := remapLine(track, frame.Pos); l != 0 {
				line = l
				break
			}
		}
		return RuntimeFailure{
			Kind: "Error",
			Msg:  evalErr.Msg,
			Line: line,
		}
	}

	// static resolve errors (e.g. undefined names) behave like runtime
	// name errors from the document's point of view
	var resolveErrs resolve.ErrorList
	if errors.As(err, &resolveErrs) && len(resolveErrs) > 0 {
		first := resolveErrs[0]
		return RuntimeFailure{
			Kind: "Error",
			Msg:  first.Msg,
			Line: remapLine(track, first.Pos),
		}
	}
	var resolveErr resolve.Error
	if errors.As(err, &resolveErr) {
		return RuntimeFailure{
			Kind: "Error",
			Msg:  resolveErr.Msg,
			Line: remapLine(track, resolveErr.Pos),
		}
	}

	var syntaxErr syntax.Error
	if errors.As(err, &syntaxErr) {
		return SyntaxFailure{
			Msg:  syntaxErr.Msg,
			Line: remapLine(track, syntaxErr.Pos),
		}
	}

	return RuntimeFailure{
		Kind: "Error",
		Msg:  err.Error(),
	}
}

func remapLine(track *tracks.Track, pos syntax.Position) int {
	line := int(pos.Line)
	if track == nil {
		return line
	}
	if pos.Filename() != track.Name {
		return 0
	}
	return track.DocLine(line)
}

// pathPattern matches file system paths leaking into failure messages, so
// rendered expected failures stay stable across machines.
var pathPattern = regexp.MustCompile(`[.]{0,2}/[-a-zA-Z0-9_./]+[.](star|md)`)

func scrub(msg, docName string) string {
	if docName != "" {
		msg = strings.ReplaceAll(msg, docName, "my_code.star")
	}
	return pathPattern.ReplaceAllString(msg, "my_code.star")
}

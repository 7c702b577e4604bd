package runners

import "fmt"

// RenderException converts an expect-exception run into the text rendered
// into the output fence: the failure kind and message, preceded by
// whatever visible output the segment produced before failing. A segment
// that completes without a RuntimeFailure is itself a failure.
func RenderException(res *Result, docName string, line int) (string, error) {
	if res.Failure == nil {
		return "", ExpectedFailureNotRaised{
			Mode: "exception",
			Line: line,
		}
	}
	failure, ok := res.Failure.(RuntimeFailure)
	if !ok {
		// timeouts and syntax errors are never the expected failure
		return "", res.Failure
	}
	rendered := fmt.Sprintf("%s: %s", failure.Kind, scrub(failure.Msg, docName))
	if res.Visible != "" {
		return fmt.Sprintf("%sTraceback ...\n%s", res.Visible, rendered), nil
	}
	return rendered, nil
}

// RenderSyntaxError converts an expect-syntax-error check into rendered
// text. The source was only parsed, never executed.
func RenderSyntaxError(res *Result, docName string, line int) (string, error) {
	if res.Failure == nil {
		return "", ExpectedFailureNotRaised{
			Mode: "syntax-error",
			Line: line,
		}
	}
	failure, ok := res.Failure.(SyntaxFailure)
	if !ok {
		return "", res.Failure
	}
	return fmt.Sprintf("syntax error: %s", scrub(failure.Msg, docName)), nil
}

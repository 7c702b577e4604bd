package runners

import "fmt"

// Result of running one code segment. Visible is the output destined for
// the document's output fence; anything written to the debug channel went
// straight to the operator and is not part of the result.
type Result struct {
	Visible string
	Failure error
}

// RuntimeFailure is an unhandled error raised by executed code. Line is
// the 1-based document line, already remapped from the synthesized
// program, zero when unknown.
type RuntimeFailure struct {
	Kind string
	Msg  string
	Line int
}

func (e RuntimeFailure) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d)", e.Kind, e.Msg, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// SyntaxFailure means the source does not parse. Line is the 1-based
// document line.
type SyntaxFailure struct {
	Msg  string
	Line int
}

func (e SyntaxFailure) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("syntax error: %s (line %d)", e.Msg, e.Line)
	}
	return fmt.Sprintf("syntax error: %s", e.Msg)
}

// TimeoutError means the segment hit its wall-clock deadline and was
// forcibly terminated. No partial output survives.
type TimeoutError struct {
	Seconds float64
	Line    int
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("execution did not finish within %g seconds", e.Seconds)
}

// ExpectedFailureNotRaised means an expect-mode segment completed without
// producing the failure it promised.
type ExpectedFailureNotRaised struct {
	Mode string
	Line int
}

func (e ExpectedFailureNotRaised) Error() string {
	return fmt.Sprintf("%s fence raised no failure (line %d)", e.Mode, e.Line)
}

package docs

// A Document is an ordered sequence of segments covering the source text
// exactly. Rendering an unmodified document reproduces the input byte for
// byte.
type Document struct {
	Name     string
	Segments []Segment
}

type Segment interface {
	segment()
}

// Prose is everything outside fences, passed through untouched.
type Prose struct {
	Text      string
	StartLine int
	EndLine   int
}

func (*Prose) segment() {}

// Fence is a triple-backtick block. Opening and Closing are the full
// delimiter lines, Body the raw text between them. StartLine and EndLine
// are 1-based document lines of the body; an empty body has
// EndLine < StartLine.
type Fence struct {
	Opening   string
	Body      string
	Closing   string
	StartLine int
	EndLine   int
}

// SetBody replaces the fence body with text, normalized to end in exactly
// one newline.
func (f *Fence) SetBody(text string) {
	trimmed := trimNewlines(text)
	if trimmed == "" {
		f.Body = "\n"
		return
	}
	f.Body = trimmed + "\n"
}

// TrimmedBody is the body without surrounding blank lines, the form used
// when comparing previous and newly produced output.
func (f *Fence) TrimmedBody() string {
	return trimNewlines(f.Body)
}

func trimNewlines(s string) string {
	for len(s) > 0 && s[0] == '\n' {
		s = s[1:]
	}
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s
}

type Track int

const (
	TrackPrimary Track = iota
	TrackAlternate
)

func (t Track) String() string {
	switch t {
	case TrackPrimary:
		return "primary"
	case TrackAlternate:
		return "alternate"
	}
	return "invalid"
}

type Mode int

const (
	ModeNormal Mode = iota
	ModeIsolated
	ModeExpectException
	ModeExpectSyntaxError
	ModeInclude
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeIsolated:
		return "isolated"
	case ModeExpectException:
		return "expect-exception"
	case ModeExpectSyntaxError:
		return "expect-syntax-error"
	case ModeInclude:
		return "include"
	}
	return "invalid"
}

// Code is an executable fence.
type Code struct {
	Fence
	Track       Track
	Mode        Mode
	IncludePath string
}

func (*Code) segment() {}

// Output is a bare fence that receives the visible output of the code
// fences before it.
type Output struct {
	Fence
}

func (*Output) segment() {}

package docs

import (
	"strings"
)

const (
	fenceMarker   = "```"
	primaryLang   = "starlark"
	alternateLang = "python"
	includePrefix = primaryLang + "-include:"
)

// Parse scans text in a single pass and produces the segment sequence.
// Fences are lines beginning with three backticks at column zero; the
// annotation after the opening delimiter selects the segment variant.
// Line numbers are 1-based.
func Parse(name, text string) (*Document, error) {
	lines := splitLines(text)

	doc := &Document{
		Name: name,
	}

	// whether a code fence was seen since the last output fence;
	// an output fence with no producer is malformed
	producerSeen := false

	proseStart := 0
	i := 0
	for i < len(lines) {
		if !strings.HasPrefix(lines[i], fenceMarker) {
			i++
			continue
		}

		if i > proseStart {
			doc.Segments = append(doc.Segments, &Prose{
				Text:      strings.Join(lines[proseStart:i], ""),
				StartLine: proseStart + 1,
				EndLine:   i,
			})
		}

		openLine := i + 1
		j := i + 1
		for j < len(lines) && !strings.HasPrefix(lines[j], fenceMarker) {
			j++
		}
		if j == len(lines) {
			return nil, MalformedFenceError{
				Name: name,
				Line: openLine,
				Msg:  "unterminated fence",
			}
		}

		fence := Fence{
			Opening:   lines[i],
			Body:      strings.Join(lines[i+1:j], ""),
			Closing:   lines[j],
			StartLine: i + 2,
			EndLine:   j,
		}

		annotation := strings.TrimSpace(strings.TrimPrefix(lines[i], fenceMarker))
		segment, err := classify(name, openLine, annotation, fence)
		if err != nil {
			return nil, err
		}

		switch segment.(type) {
		case *Code:
			producerSeen = true
		case *Output:
			if !producerSeen {
				return nil, MalformedFenceError{
					Name: name,
					Line: openLine,
					Msg:  "output fence with no preceding code fence",
				}
			}
			producerSeen = false
		}
		doc.Segments = append(doc.Segments, segment)

		i = j + 1
		proseStart = i
	}

	if len(lines) > proseStart {
		doc.Segments = append(doc.Segments, &Prose{
			Text:      strings.Join(lines[proseStart:], ""),
			StartLine: proseStart + 1,
			EndLine:   len(lines),
		})
	}

	return doc, nil
}

func classify(name string, line int, annotation string, fence Fence) (Segment, error) {
	lowered := strings.ToLower(annotation)

	switch lowered {

	case "":
		return &Output{
			Fence: fence,
		}, nil

	case primaryLang:
		return &Code{
			Fence: fence,
			Track: TrackPrimary,
			Mode:  ModeNormal,
		}, nil

	case primaryLang + "-isolated":
		return &Code{
			Fence: fence,
			Track: TrackPrimary,
			Mode:  ModeIsolated,
		}, nil

	case primaryLang + "-exception":
		return &Code{
			Fence: fence,
			Track: TrackPrimary,
			Mode:  ModeExpectException,
		}, nil

	case primaryLang + "-syntax-error":
		return &Code{
			Fence: fence,
			Track: TrackPrimary,
			Mode:  ModeExpectSyntaxError,
		}, nil

	case alternateLang:
		return &Code{
			Fence: fence,
			Track: TrackAlternate,
			Mode:  ModeIsolated,
		}, nil

	}

	if strings.HasPrefix(lowered, includePrefix) {
		// keep the path as written, only the keyword is case-insensitive
		path := strings.TrimSpace(annotation[len(includePrefix):])
		if path == "" {
			return nil, MalformedFenceError{
				Name: name,
				Line: line,
				Msg:  "include fence with empty path",
			}
		}
		return &Code{
			Fence:       fence,
			Track:       TrackPrimary,
			Mode:        ModeInclude,
			IncludePath: path,
		}, nil
	}

	return nil, MalformedFenceError{
		Name: name,
		Line: line,
		Msg:  "unknown fence annotation: " + annotation,
	}
}

// splitLines splits keeping line terminators, so joining the parts
// reproduces the input exactly.
func splitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		n := strings.IndexByte(text, '\n')
		if n < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:n+1])
		text = text[n+1:]
	}
	return lines
}

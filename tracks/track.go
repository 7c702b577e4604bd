package tracks

import (
	"strings"

	"go.starlark.net/starlark"
)

// A Track is one cumulative execution lineage. It owns the persistent
// module globals and the synthesized concatenated program built from every
// extension, plus the table remapping synthesized-program lines back to
// document lines.
type Track struct {
	Name    string
	Globals starlark.StringDict

	// committed synthesized-program line count
	lines int
	// origins[i] is the 1-based document line that synthesized-program
	// line i+1 came from; 0 for padding
	origins []int
}

func NewTrack(name string) *Track {
	return &Track{
		Name:    name,
		Globals: make(starlark.StringDict),
	}
}

// A Chunk is one code segment's source about to join the track.
type Chunk struct {
	Source string
	// document line of the first source line
	Origin int
	// include mode: every source line remaps to Origin, the inclusion
	// site, not the external file's own numbering
	Collapsed bool
}

// Extend appends the chunks to the synthesized program and returns the
// program text to execute for them: blank lines standing in for everything
// committed before, then the chunk sources. Positions reported against the
// returned text are synthesized-program positions, resolvable with
// DocLine.
func (t *Track) Extend(chunks []Chunk) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("\n", t.lines))

	for _, chunk := range chunks {
		source := chunk.Source
		if source != "" && !strings.HasSuffix(source, "\n") {
			source += "\n"
		}
		n := strings.Count(source, "\n")
		for i := range n {
			if chunk.Collapsed {
				t.origins = append(t.origins, chunk.Origin)
			} else {
				t.origins = append(t.origins, chunk.Origin+i)
			}
		}
		t.lines += n
		sb.WriteString(source)
	}

	return sb.String()
}

// Lines reports the committed synthesized-program line count.
func (t *Track) Lines() int {
	return t.lines
}

// DocLine remaps a 1-based synthesized-program line to its document line.
// Zero means unknown.
func (t *Track) DocLine(progLine int) int {
	if progLine < 1 || progLine > len(t.origins) {
		return 0
	}
	return t.origins[progLine-1]
}

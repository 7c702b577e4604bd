package runners

import (
	"io"
	"strings"

	"go.starlark.net/starlark"
)

// pprintWidth is the maximum width of monospace code lines in the
// rendered document.
const pprintWidth = 65

// pprintTo writes v in its single-line form when it fits, otherwise
// splits containers one element per line, recursively.
func pprintTo(w io.Writer, v starlark.Value) {
	writeValue(w, v, 0)
	io.WriteString(w, "\n")
}

func writeValue(w io.Writer, v starlark.Value, indent int) {
	s := v.String()
	if indent+len(s) <= pprintWidth {
		io.WriteString(w, s)
		return
	}

	pad := strings.Repeat(" ", indent+1)
	switch v := v.(type) {

	case *starlark.List:
		writeElems(w, "[", "]", pad, listElems(v.Len(), v.Index), indent)

	case starlark.Tuple:
		writeElems(w, "(", ")", pad, listElems(len(v), func(i int) starlark.Value {
			return v[i]
		}), indent)

	case *starlark.Dict:
		items := v.Items()
		io.WriteString(w, "{")
		for i, item := range items {
			if i > 0 {
				io.WriteString(w, pad)
			}
			io.WriteString(w, item[0].String())
			io.WriteString(w, ": ")
			writeValue(w, item[1], indent+1+len(item[0].String())+2)
			if i < len(items)-1 {
				io.WriteString(w, ",\n")
			}
		}
		io.WriteString(w, "}")

	default:
		// not splittable, emit overlong
		io.WriteString(w, s)
	}
}

func listElems(n int, at func(int) starlark.Value) []starlark.Value {
	elems := make([]starlark.Value, n)
	for i := range n {
		elems[i] = at(i)
	}
	return elems
}

func writeElems(w io.Writer, opening, closing, pad string, elems []starlark.Value, indent int) {
	io.WriteString(w, opening)
	for i, elem := range elems {
		if i > 0 {
			io.WriteString(w, pad)
		}
		writeValue(w, elem, indent+1)
		if i < len(elems)-1 {
			io.WriteString(w, ",\n")
		}
	}
	io.WriteString(w, closing)
}

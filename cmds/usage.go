package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	seen := make(map[*Command]bool)
	type entry struct {
		names []string
		desc  string
	}
	var entries []entry
	for name, command := range p.commands {
		if seen[command] {
			continue
		}
		seen[command] = true
		names := append([]string{name}, command.Aliases...)
		slices.Sort(names)
		entries = append(entries, entry{
			names: names,
			desc:  command.Description,
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.names[0], b.names[0])
	})
	for _, e := range entries {
		fmt.Fprintf(w, "%s\n", strings.Join(e.names, " | "))
		if e.desc != "" {
			fmt.Fprintf(w, "\t%s\n", e.desc)
		}
	}
}

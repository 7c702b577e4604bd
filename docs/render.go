package docs

import "strings"

// Render reconstructs the document text from its segments.
func (d *Document) Render() string {
	var sb strings.Builder
	for _, segment := range d.Segments {
		switch s := segment.(type) {
		case *Prose:
			sb.WriteString(s.Text)
		case *Code:
			sb.WriteString(s.Opening)
			sb.WriteString(s.Body)
			sb.WriteString(s.Closing)
		case *Output:
			sb.WriteString(s.Opening)
			sb.WriteString(s.Body)
			sb.WriteString(s.Closing)
		}
	}
	return sb.String()
}

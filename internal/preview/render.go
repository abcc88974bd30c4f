package preview

import "strings"

// RenderFunc converts markup source into display lines.
type RenderFunc func(source []byte) ([]string, error)

// Render is the built-in plain-text renderer. It is deliberately shallow:
// comment lines are dropped, heading markers and attribute declarations
// are reformatted, and everything else passes through.
func Render(source []byte) ([]string, error) {
	raw := strings.Split(strings.ReplaceAll(string(source), "\r\n", "\n"), "\n")

	out := make([]string, 0, len(raw))
	for _, line := range raw {
		switch {
		case strings.HasPrefix(line, "//"):
			// Comment line.
		case strings.HasPrefix(line, "= "):
			title := strings.TrimPrefix(line, "= ")
			out = append(out, title, strings.Repeat("=", len(title)))
		case strings.HasPrefix(line, "== "):
			title := strings.TrimPrefix(line, "== ")
			out = append(out, title, strings.Repeat("-", len(title)))
		case strings.HasPrefix(line, ":") && strings.Count(line, ":") >= 2:
			// Attribute declarations such as ":author: Jane" are metadata,
			// not body text.
		default:
			out = append(out, line)
		}
	}
	return out, nil
}

package javasrc

import "strings"

const indentStr = "    "

// indent prefixes every line of text holding non-whitespace characters
// with one level of indentation. Whitespace-only lines are kept as they are.
func indent(text string) string {
	lines := strings.SplitAfter(text, "\n")
	var sb strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			sb.WriteString(indentStr)
		}
		sb.WriteString(line)
	}
	return sb.String()
}

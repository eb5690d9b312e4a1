package stub

import "strings"

// Lines joins blocks so that each one starts on its own line at the given
// indentation. The first block is not indented because the placeholder it
// replaces already is. Multi-line blocks are indented as a whole.
func Lines(blocks []string, indent string) string {
	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteByte('\n')
			b.WriteString(indent)
		}
		b.WriteString(strings.ReplaceAll(block, "\n", "\n"+indent))
	}
	return b.String()
}

// Blocks is like Lines but separates blocks with an empty line.
func Blocks(blocks []string, indent string) string {
	var b strings.Builder
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n\n")
			b.WriteString(indent)
		}
		b.WriteString(strings.ReplaceAll(block, "\n", "\n"+indent))
	}
	return b.String()
}

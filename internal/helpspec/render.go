package helpspec

import "strings"

const (
	optionIndent = "    "
	// Flag cells end at a 4-column stop; descriptions start a fixed gutter
	// past that stop. Short and long rows therefore do not share a single
	// description column.
	columnStop  = 4
	gutterWidth = 8
)

// Render produces the canonical help block for spec: usage, blank line,
// description, blank line, then one line per option in declared order.
// The output is byte-for-byte deterministic, every line ends with exactly
// one newline, and there is no trailing blank line.
func Render(spec CommandSpec) string {
	var b strings.Builder
	b.WriteString(spec.Usage)
	b.WriteString("\n\n")
	b.WriteString(spec.Description)
	b.WriteString("\n\n")
	b.WriteString("Optional arguments:\n")
	for _, opt := range spec.Options {
		flag := opt.Flag()
		end := len(optionIndent) + len(flag)
		b.WriteString(optionIndent)
		b.WriteString(flag)
		b.WriteString(strings.Repeat(" ", descColumn(end)-end))
		b.WriteString(opt.Description)
		b.WriteByte('\n')
	}
	return b.String()
}

// descColumn returns the offset where the description starts for a flag
// cell ending at end.
func descColumn(end int) int {
	stop := (end/columnStop + 1) * columnStop
	return stop + gutterWidth
}

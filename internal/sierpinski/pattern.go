package sierpinski

import "strings"

// Pattern is the ordered list of rows of one rendering, top to bottom.
// Rows contain only ' ' and '*'.
type Pattern []string

// Rows returns the number of rows.
func (p Pattern) Rows() int { return len(p) }

// Width returns the length of the last row, which is the unpadded anchor
// row and therefore the widest.
func (p Pattern) Width() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[len(p)-1])
}

// String serializes the rows joined by newlines, with a trailing newline.
func (p Pattern) String() string {
	var b strings.Builder
	size := 0
	for _, row := range p {
		size += len(row) + 1
	}
	b.Grow(size)
	for _, row := range p {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

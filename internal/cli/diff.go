package cli

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of identical lines kept around each change.
const diffContext = 2

// DiffLine is one line of a line-oriented diff.
type DiffLine struct {
	// Op is '-' for reference-only lines, '+' for other-only lines and ' '
	// for shared lines. '~' marks a run of elided shared lines.
	Op   byte
	Text string
}

// LineDiff computes a line-oriented diff of reference against other.
// Shared runs longer than the context window are collapsed into a single
// '~' line whose Text is the number of elided lines.
func LineDiff(reference, other string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(reference, other)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var lines []DiffLine
	for i, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		split := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range split {
				lines = append(lines, DiffLine{Op: '-', Text: l})
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range split {
				lines = append(lines, DiffLine{Op: '+', Text: l})
			}
		case diffmatchpatch.DiffEqual:
			lines = append(lines, collapseEqual(split, i == 0, i == len(diffs)-1)...)
		}
	}
	return lines
}

func collapseEqual(split []string, first, last bool) []DiffLine {
	keepHead, keepTail := diffContext, diffContext
	if first {
		keepHead = 0
	}
	if last {
		keepTail = 0
	}
	if len(split) <= keepHead+keepTail {
		out := make([]DiffLine, len(split))
		for i, l := range split {
			out[i] = DiffLine{Op: ' ', Text: l}
		}
		return out
	}
	out := make([]DiffLine, 0, keepHead+keepTail+1)
	for _, l := range split[:keepHead] {
		out = append(out, DiffLine{Op: ' ', Text: l})
	}
	out = append(out, DiffLine{Op: '~', Text: fmt.Sprint(len(split) - keepHead - keepTail)})
	for _, l := range split[len(split)-keepTail:] {
		out = append(out, DiffLine{Op: ' ', Text: l})
	}
	return out
}

// FirstDifference returns the byte offset of the first difference between
// a and b, or -1 if they are equal.
func FirstDifference(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) == len(b) {
		return -1
	}
	return n
}

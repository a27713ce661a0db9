package cli

import (
	"strings"
	"testing"
)

func ops(lines []DiffLine) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteByte(l.Op)
	}
	return b.String()
}

func TestLineDiff(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		a, b  string
		ops   string
		check func(t *testing.T, lines []DiffLine)
	}{
		{
			name: "single changed line",
			a:    "a\nb\nc\n",
			b:    "a\nx\nc\n",
			ops:  " -+ ",
		},
		{
			name: "trailing space difference",
			a:    "* *\n",
			b:    "* * \n",
			ops:  "-+",
			check: func(t *testing.T, lines []DiffLine) {
				if lines[1].Text != "* * " {
					t.Errorf("inserted line = %q", lines[1].Text)
				}
			},
		},
		{
			name: "long shared prefix collapses",
			a:    "1\n2\n3\n4\n5\n6\nold\n",
			b:    "1\n2\n3\n4\n5\n6\nnew\n",
			ops:  "~  -+",
			check: func(t *testing.T, lines []DiffLine) {
				if lines[0].Text != "4" {
					t.Errorf("elided count = %q, want 4", lines[0].Text)
				}
			},
		},
		{
			name: "long shared middle keeps context both sides",
			a:    "x\n1\n2\n3\n4\n5\n6\ny\n",
			b:    "X\n1\n2\n3\n4\n5\n6\nY\n",
			ops:  "-+  ~  -+",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lines := LineDiff(tt.a, tt.b)
			if got := ops(lines); got != tt.ops {
				t.Fatalf("ops = %q, want %q (%+v)", got, tt.ops, lines)
			}
			if tt.check != nil {
				tt.check(t, lines)
			}
		})
	}
}

func TestFirstDifference(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", -1},
		{"abc", "abc", -1},
		{"abc", "abd", 2},
		{"ab", "abc", 2},
		{"abc", "", 0},
	}
	for _, tt := range tests {
		if got := FirstDifference(tt.a, tt.b); got != tt.want {
			t.Errorf("FirstDifference(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders a render time for the comparison table and
// the result header. The native path at small depths finishes faster than
// the clock resolution on some platforms, so anything under a microsecond,
// zero included, reads "< 1µs" rather than "0µs". Sub-second values are
// whole µs or ms; longer ones use time.Duration's own format.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

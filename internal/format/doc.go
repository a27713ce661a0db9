// Package format holds presentation-independent formatting helpers shared
// by the CLI and the result file writer.
package format

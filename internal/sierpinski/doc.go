// Package sierpinski builds the ASCII Sierpinski triangle natively.
//
// Generate is pure: every call returns a freshly allocated Pattern and keeps
// no state between calls, so concurrent calls are independent.
package sierpinski

// Package renderer adapts the two ways of producing a Sierpinski triangle to
// one Renderer interface so the comparison shell can run and time them side
// by side:
//
//   - "native" builds the pattern with the recursive algorithm in package
//     sierpinski.
//   - "program" runs SierpinskiProgram on a foreign interpreter through an
//     engine.Wrapper and decodes what it prints.
package renderer

// Package engine defines the boundary through which fractalcmp runs a program
// on a foreign interpreter and reads back its output.
//
// An Engine receives a program and an input stream and blocks until the
// interpreter has finished, returning a Response whose Status is
// StatusSuccess (1) on success. Anything else is a failure and the Output
// must not be trusted. Callers usually go through a Wrapper, which isolates
// the caller's buffers and decodes the output into text.
//
// The interpreter itself lives outside this module. SubprocessEngine reaches
// one by running an external binary; EngineFunc adapts in-process
// implementations.
package engine

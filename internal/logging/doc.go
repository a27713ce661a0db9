// Package logging provides the structured logging interface used by
// fractalcmp. Entries go through zerolog; each component gets its own
// logger tagged with a "component" field.
package logging

// Package errors provides the structured error type shared by lazystream
// packages. Every error carries a machine-readable code so callers can match
// on the kind of failure with errors.Is, and the CLI can map it to an exit
// status.
package errors

// Package errors provides the structured error type shared by xduce packages.
//
// Every error carries a machine-readable code and a retryable flag so that
// callers (the Redis sink, the CLI) can decide whether to retry, and
// contract violations raised while building transducers can be told apart
// from ordinary I/O failures.
package errors

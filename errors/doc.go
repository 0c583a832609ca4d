// Package errors provides the structured error type shared by the corpus
// loaders and protocol builders.
//
// Every failure raised while building a protocol is an *AppError carrying a
// machine-readable ErrorCode, so callers can branch on the failure class
// with HasCode instead of matching message text. Corpus data is static and
// versioned: none of the corpus codes are retryable.
package errors

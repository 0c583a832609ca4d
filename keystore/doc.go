// Package keystore loads the per-database PRISM key files and merges them
// into one Table keyed by unique recording name.
//
// Each key file is whitespace-delimited with sixteen columns in the order
// of FieldNames and no header row. Rows that repeat an earlier row exactly
// are dropped; two different rows sharing a unique name are an error.
// Channel symbols are normalized to 1 or 2 (a→1, b→2, x→1).
package keystore

// Package trials loads the trial mask of an evaluation condition.
//
// A mask file has one row per enrollment identifier and one whitespace-
// separated column per test identifier. Cells are 1 (target), 0
// (non-target) or -1 (untested). The file may start with a header row
// naming the test identifiers; when present it must match the test list.
package trials

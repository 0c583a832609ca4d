// Package partition iterates the five named partitions of a protocol.
//
// An Iterator is built once from a key table and the identifier lists of
// each partition. Every identifier is checked against the table at
// construction, so iteration itself cannot fail. Iterate returns a fresh
// Result on every call: a lazy sequence of items in list order together
// with the number of items it will produce.
package partition

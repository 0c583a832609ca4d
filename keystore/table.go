package keystore

import (
	"iter"
	"slices"
)

// Table maps unique recording names to their metadata. Iteration follows
// the order in which names first appeared across the merged key files.
// A Table is read-only once built.
type Table struct {
	ids     []string
	records map[string]Record
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.ids) }

// Get returns the record of a unique name.
func (t *Table) Get(id string) (Record, bool) {
	rec, ok := t.records[id]
	return rec, ok
}

// IDs returns a copy of the unique names in table order.
func (t *Table) IDs() []string { return slices.Clone(t.ids) }

// All yields every (unique name, record) pair in table order.
func (t *Table) All() iter.Seq2[string, Record] {
	return func(yield func(string, Record) bool) {
		for _, id := range t.ids {
			if !yield(id, t.records[id]) {
				return
			}
		}
	}
}

// Select returns, in table order, the unique names whose record satisfies keep.
func (t *Table) Select(keep func(Record) bool) []string {
	var ids []string
	for id, rec := range t.All() {
		if keep(rec) {
			ids = append(ids, id)
		}
	}
	return ids
}

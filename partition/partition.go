package partition

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/kbukum/prism/errors"
	"github.com/kbukum/prism/keystore"
)

// Name identifies a partition.
type Name string

const (
	Train      Name = "train"
	DevEnroll  Name = "dev-enroll"
	DevTest    Name = "dev-test"
	EvalEnroll Name = "eval-enroll"
	EvalTest   Name = "eval-test"
)

// Names lists every partition in protocol order.
var Names = []Name{Train, DevEnroll, DevTest, EvalEnroll, EvalTest}

// ParseName resolves a partition name.
func ParseName(s string) (Name, error) {
	n := Name(s)
	if !slices.Contains(Names, n) {
		return "", errors.InvalidInput("partition", fmt.Sprintf("unknown partition %q", s))
	}
	return n, nil
}

// Item is one yielded recording.
type Item struct {
	ID     string          `json:"unique_name" yaml:"unique_name"`
	Record keystore.Record `json:"record" yaml:"record"`
	// Extra holds the outputs of the host's preprocessors, by key.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Preprocessor derives one extra value from an item. It sees the values
// written by preprocessors whose keys sort before its own.
type Preprocessor func(Item) any

// Members are the identifier lists backing each partition.
type Members struct {
	Train      []string
	DevEnroll  []string
	DevTest    []string
	EvalEnroll []string
	EvalTest   []string
}

func (m Members) of(n Name) []string {
	switch n {
	case Train:
		return m.Train
	case DevEnroll:
		return m.DevEnroll
	case DevTest:
		return m.DevTest
	case EvalEnroll:
		return m.EvalEnroll
	case EvalTest:
		return m.EvalTest
	}
	return nil
}

// Result is one traversal of a partition.
type Result struct {
	Items         iter.Seq[Item]
	ExpectedCount int
}

// Iterator produces the partitions of one protocol. It is read-only after
// construction and safe for concurrent use.
type Iterator struct {
	table   *keystore.Table
	members Members
	pre     map[string]Preprocessor
	preKeys []string
}

// New builds an Iterator. Every listed identifier must exist in table.
func New(table *keystore.Table, members Members, pre map[string]Preprocessor) (*Iterator, error) {
	it := &Iterator{
		table: table,
		members: Members{
			Train:      slices.Clone(members.Train),
			DevEnroll:  slices.Clone(members.DevEnroll),
			DevTest:    slices.Clone(members.DevTest),
			EvalEnroll: slices.Clone(members.EvalEnroll),
			EvalTest:   slices.Clone(members.EvalTest),
		},
		pre:     maps.Clone(pre),
		preKeys: slices.Sorted(maps.Keys(pre)),
	}
	for _, n := range Names {
		for _, id := range it.members.of(n) {
			if _, ok := table.Get(id); !ok {
				return nil, errors.UnknownIdentifier(id, string(n))
			}
		}
	}
	return it, nil
}

// Iterate returns a fresh traversal of partition n.
func (it *Iterator) Iterate(n Name) (Result, error) {
	if !slices.Contains(Names, n) {
		return Result{}, errors.InvalidInput("partition", fmt.Sprintf("unknown partition %q", n))
	}
	ids := it.members.of(n)
	return Result{Items: it.items(ids), ExpectedCount: len(ids)}, nil
}

// IDs returns a copy of the identifiers of partition n.
func (it *Iterator) IDs(n Name) []string {
	return slices.Clone(it.members.of(n))
}

// Len returns the size of partition n.
func (it *Iterator) Len(n Name) int {
	return len(it.members.of(n))
}

func (it *Iterator) items(ids []string) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, id := range ids {
			rec, _ := it.table.Get(id)
			if !yield(it.item(id, rec)) {
				return
			}
		}
	}
}

func (it *Iterator) item(id string, rec keystore.Record) Item {
	item := Item{ID: id, Record: rec}
	if len(it.preKeys) == 0 {
		return item
	}
	item.Extra = make(map[string]any, len(it.preKeys))
	for _, key := range it.preKeys {
		item.Extra[key] = it.pre[key](item)
	}
	return item
}

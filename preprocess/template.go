package preprocess

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/kbukum/prism/errors"
	"github.com/kbukum/prism/keystore"
	"github.com/kbukum/prism/partition"
)

// UniqueName is the placeholder for the item identifier.
const UniqueName = "unique_name"

// Placeholders lists every name a template may reference.
func Placeholders() []string {
	return slices.Clone(keystore.FieldNames[:])
}

type segment struct {
	text  string
	field string // empty for literal text
}

// Template compiles pattern into a preprocessor that returns the pattern
// with each {field} replaced by the item's value. "{{" and "}}" produce
// literal braces.
func Template(pattern string) (partition.Preprocessor, error) {
	segs, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return func(item partition.Item) any {
		return render(segs, item)
	}, nil
}

// Templates compiles one template per key.
func Templates(patterns map[string]string) (map[string]partition.Preprocessor, error) {
	out := make(map[string]partition.Preprocessor, len(patterns))
	for _, key := range slices.Sorted(maps.Keys(patterns)) {
		pre, err := Template(patterns[key])
		if err != nil {
			if appErr, ok := errors.AsAppError(err); ok {
				return nil, appErr.WithDetail("key", key)
			}
			return nil, err
		}
		out[key] = pre
	}
	return out, nil
}

// Field returns a preprocessor yielding one column as text.
func Field(name string) (partition.Preprocessor, error) {
	if !known(name) {
		return nil, unknownPlaceholder(name)
	}
	return func(item partition.Item) any {
		return value(item, name)
	}, nil
}

// Func adapts a record function into a preprocessor.
func Func(f func(id string, rec keystore.Record) any) partition.Preprocessor {
	return func(item partition.Item) any {
		return f(item.ID, item.Record)
	}
}

func compile(pattern string) ([]segment, error) {
	var (
		segs []segment
		lit  strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{text: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '{' && i+1 < len(pattern) && pattern[i+1] == '{':
			lit.WriteByte('{')
			i++
		case c == '}' && i+1 < len(pattern) && pattern[i+1] == '}':
			lit.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(pattern[i+1:], '}')
			if end < 0 {
				return nil, errors.InvalidInput("template", fmt.Sprintf("unclosed placeholder in %q", pattern))
			}
			name := pattern[i+1 : i+1+end]
			if !known(name) {
				return nil, unknownPlaceholder(name).WithDetail("template", pattern)
			}
			flush()
			segs = append(segs, segment{field: name})
			i += end + 1
		case c == '}':
			return nil, errors.InvalidInput("template", fmt.Sprintf("unmatched '}' in %q", pattern))
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return segs, nil
}

func render(segs []segment, item partition.Item) string {
	var b strings.Builder
	var values map[string]string
	for _, s := range segs {
		if s.field == "" {
			b.WriteString(s.text)
			continue
		}
		if s.field == UniqueName {
			b.WriteString(item.ID)
			continue
		}
		if values == nil {
			values = item.Record.Values()
		}
		b.WriteString(values[s.field])
	}
	return b.String()
}

func value(item partition.Item, name string) string {
	if name == UniqueName {
		return item.ID
	}
	return item.Record.Values()[name]
}

func known(name string) bool {
	return slices.Contains(keystore.FieldNames[:], name)
}

func unknownPlaceholder(name string) *errors.AppError {
	return errors.InvalidInput("template", fmt.Sprintf("unknown placeholder {%s}", name)).
		WithDetail("placeholder", name)
}

package protocol

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/kbukum/prism/condition"
	"github.com/kbukum/prism/errors"
	"github.com/kbukum/prism/validation"
)

// Key identifies a registered protocol.
type Key struct {
	Task string `json:"task" yaml:"task"`
	Name string `json:"name" yaml:"name"`
}

func (k Key) String() string { return k.Task + "/" + k.Name }

// Factory builds a protocol instance.
type Factory func(opts ...Option) (*Protocol, error)

// Catalog maps (task, name) pairs to factories.
type Catalog struct {
	mu        sync.RWMutex
	factories map[Key]Factory
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[Key]Factory)}
}

// Register adds a factory. Registering a key twice is an error.
func (c *Catalog) Register(task, name string, f Factory) error {
	err := validation.New().
		Identifier("task", task).
		Identifier("name", name).
		Err()
	if err != nil {
		return err
	}
	key := Key{Task: task, Name: name}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.factories[key]; ok {
		return errors.InvalidInput("protocol", fmt.Sprintf("%s is already registered", key))
	}
	c.factories[key] = f
	return nil
}

// Create builds a new instance of the named protocol.
func (c *Catalog) Create(task, name string, opts ...Option) (*Protocol, error) {
	c.mu.RLock()
	f, ok := c.factories[Key{Task: task, Name: name}]
	c.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("protocol", Key{Task: task, Name: name}.String())
	}
	return f(opts...)
}

// Keys returns the registered keys sorted by task, then name.
func (c *Catalog) Keys() []Key {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.SortedFunc(maps.Keys(c.factories), func(a, b Key) int {
		return cmp.Or(cmp.Compare(a.Task, b.Task), cmp.Compare(a.Name, b.Name))
	})
}

// RegisterDefaults registers Debug and every SRE10 condition of src under Task.
func RegisterDefaults(c *Catalog, src *Source) error {
	conds := append([]condition.Condition{condition.NewDebug()}, condition.All()...)
	for _, cond := range conds {
		if err := c.Register(Task, cond.Name(), func(opts ...Option) (*Protocol, error) {
			return src.Build(cond, opts...)
		}); err != nil {
			return err
		}
	}
	return nil
}

// NewDefaultCatalog returns a Catalog holding the default PRISM protocols.
func NewDefaultCatalog(src *Source) (*Catalog, error) {
	c := NewCatalog()
	if err := RegisterDefaults(c, src); err != nil {
		return nil, err
	}
	return c, nil
}

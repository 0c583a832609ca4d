package protocol

import (
	"io/fs"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/prism/condition"
	"github.com/kbukum/prism/errors"
	"github.com/kbukum/prism/keystore"
	"github.com/kbukum/prism/logger"
	"github.com/kbukum/prism/partition"
	"github.com/kbukum/prism/trials"
)

// Source holds the data shared by all protocols of one corpus.
type Source struct {
	databases []string
	store     *keystore.Store
	filter    *condition.Filter
	log       *logger.Logger

	once  sync.Once
	table *keystore.Table
	err   error
}

// NewSource prepares a corpus rooted at fsys. The key files of databases
// are read on the first Table or Build call.
func NewSource(fsys fs.FS, databases []string, settings condition.Settings, log *logger.Logger) (*Source, error) {
	if len(databases) == 0 {
		return nil, errors.InvalidInput("databases", "at least one database is required")
	}
	if log == nil {
		log = logger.Get(logger.ComponentProtocol)
	}
	filter, err := condition.NewFilter(fsys, settings, log.WithComponent(logger.ComponentCondition))
	if err != nil {
		return nil, err
	}
	return &Source{
		databases: slices.Clone(databases),
		store:     keystore.NewStore(fsys, log.WithComponent(logger.ComponentKeystore)),
		filter:    filter,
		log:       log,
	}, nil
}

// Table returns the merged key table. A load failure is sticky.
func (s *Source) Table() (*keystore.Table, error) {
	s.once.Do(func() {
		s.table, s.err = s.store.Load(s.databases)
	})
	return s.table, s.err
}

// Filter returns the condition filter.
func (s *Source) Filter() *condition.Filter { return s.filter }

// Build constructs the protocol of c. Construction either fully succeeds
// or returns the first error.
func (s *Source) Build(c condition.Condition, opts ...Option) (*Protocol, error) {
	start := time.Now()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	pre, err := o.preprocessors()
	if err != nil {
		return nil, err
	}

	table, err := s.Table()
	if err != nil {
		return nil, err
	}
	train := s.filter.TrainingPool(table, c)
	enroll, err := s.filter.EvaluationIdentifiers(c, condition.Enroll)
	if err != nil {
		return nil, err
	}
	test, err := s.filter.EvaluationIdentifiers(c, condition.Test)
	if err != nil {
		return nil, err
	}
	matrix, err := trials.LoadCondition(s.filter, c)
	if err != nil {
		return nil, err
	}
	it, err := partition.New(table, partition.Members{
		Train:      train,
		EvalEnroll: enroll,
		EvalTest:   test,
	}, pre)
	if err != nil {
		return nil, err
	}

	p := &Protocol{
		name:   c.Name(),
		cond:   c,
		id:     uuid.New(),
		it:     it,
		matrix: matrix,
	}
	counts := matrix.Counts()
	fields := logger.DurationFields("build", time.Since(start))
	fields[logger.FieldProtocol] = p.name
	fields[logger.FieldInstanceID] = p.InstanceID()
	fields["train"] = len(train)
	fields["eval_enroll"] = len(enroll)
	fields["eval_test"] = len(test)
	fields["target_trials"] = counts.Target
	fields["nontarget_trials"] = counts.NonTarget
	s.log.Info("protocol constructed", fields)
	return p, nil
}

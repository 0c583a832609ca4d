package keystore

import (
	"io/fs"
	"time"

	"github.com/kbukum/prism/errors"
	"github.com/kbukum/prism/logger"
)

// Store reads key files from a PRISM data tree.
type Store struct {
	fsys fs.FS
	log  *logger.Logger
}

// NewStore creates a Store over the data tree fsys. A nil logger uses the
// global "keystore" logger.
func NewStore(fsys fs.FS, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Get(logger.ComponentKeystore)
	}
	return &Store{fsys: fsys, log: log}
}

// Load reads the key files of databases, in order, and merges them.
// The result depends only on the file contents and the database order.
func (s *Store) Load(databases []string) (*Table, error) {
	start := time.Now()

	var rows []row
	for _, db := range databases {
		name := KeyFilePath(db)
		data, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, errors.Configuration(name, err).WithDetail("database", db)
		}
		dbRows, err := parseKeyFile(name, data)
		if err != nil {
			return nil, err
		}
		s.log.Debug("key file read", logger.Fields(
			logger.FieldDatabase, db,
			logger.FieldCount, len(dbRows),
		))
		rows = append(rows, dbRows...)
	}

	table, err := merge(rows)
	if err != nil {
		s.log.Error("key merge failed", logger.ErrorFields("merge", err))
		return nil, err
	}

	fields := logger.DurationFields("load", time.Since(start))
	fields[logger.FieldCount] = table.Len()
	fields["rows"] = len(rows)
	fields["databases"] = len(databases)
	s.log.Info("keys loaded", fields)
	return table, nil
}

// merge drops exact duplicate rows, keeping the first, then indexes the
// remainder by unique name.
func merge(rows []row) (*Table, error) {
	seen := make(map[row]struct{}, len(rows))
	first := make(map[string]row, len(rows))
	t := &Table{records: make(map[string]Record, len(rows))}

	for _, r := range rows {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}

		id := r.uniqueName()
		if prev, exists := first[id]; exists {
			return nil, errors.DuplicateIdentifier(id).
				WithDetail("databases", []string{prev[1], r[1]})
		}
		first[id] = r

		rec, err := r.toRecord()
		if err != nil {
			return nil, err
		}
		t.ids = append(t.ids, id)
		t.records[id] = rec
	}
	return t, nil
}

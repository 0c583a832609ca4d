package condition

import (
	"bufio"
	"bytes"
	"io/fs"
	"strings"

	"github.com/kbukum/prism/errors"
	"github.com/kbukum/prism/keystore"
	"github.com/kbukum/prism/logger"
	"github.com/kbukum/prism/validation"
)

// Settings are the corpus-wide parameters of every condition.
type Settings struct {
	EvalDatabase    string `validate:"required"`
	DebugTrainLimit int    `validate:"gte=1"`
	DebugEvalLimit  int    `validate:"gte=1"`
}

// DefaultSettings returns the PRISM SRE10 settings.
func DefaultSettings() Settings {
	return Settings{
		EvalDatabase:    DefaultEvalDatabase,
		DebugTrainLimit: DefaultDebugTrainLimit,
		DebugEvalLimit:  DefaultDebugEvalLimit,
	}
}

// Filter derives partition membership for conditions from a data tree.
type Filter struct {
	fsys     fs.FS
	settings Settings
	log      *logger.Logger
}

// NewFilter creates a Filter reading condition files from fsys.
func NewFilter(fsys fs.FS, settings Settings, log *logger.Logger) (*Filter, error) {
	if err := validation.Validate(settings); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Get(logger.ComponentCondition)
	}
	return &Filter{fsys: fsys, settings: settings, log: log}, nil
}

// Settings returns the filter settings.
func (f *Filter) Settings() Settings { return f.settings }

// TrainingPool returns, in table order, the unique names usable for
// training under c.
func (f *Filter) TrainingPool(table *keystore.Table, c Condition) []string {
	ids := table.Select(allOf(TrainingPredicates(c, f.settings.EvalDatabase)))
	if c.Strategy == Debug {
		ids = truncate(ids, f.settings.DebugTrainLimit)
	}
	f.log.Debug("training pool selected", logger.Fields(
		logger.FieldCondition, c.Name(),
		logger.FieldCount, len(ids),
	))
	return ids
}

// EvaluationIdentifiers reads the identifier list of role for c, truncated
// for the debug condition. A missing list is a configuration error.
func (f *Filter) EvaluationIdentifiers(c Condition, role Role) ([]string, error) {
	ids, err := f.ListedIdentifiers(c, role)
	if err != nil {
		return nil, err
	}
	if c.Strategy == Debug {
		ids = truncate(ids, f.settings.DebugEvalLimit)
	}
	return ids, nil
}

// ListedIdentifiers reads the complete identifier list of role for c.
func (f *Filter) ListedIdentifiers(c Condition, role Role) ([]string, error) {
	name := c.ListPath(role)
	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		return nil, errors.Configuration(name, err).WithDetail(logger.FieldCondition, c.Name())
	}
	return parseList(name, data)
}

// TrialFile returns the trial mask location of c, failing if it is absent.
func (f *Filter) TrialFile(c Condition) (string, error) {
	name := c.TrialPath()
	if _, err := fs.Stat(f.fsys, name); err != nil {
		return "", errors.Configuration(name, err).WithDetail(logger.FieldCondition, c.Name())
	}
	return name, nil
}

// FS returns the data tree the filter reads from.
func (f *Filter) FS() fs.FS { return f.fsys }

// parseList reads one identifier per line; surrounding whitespace and
// blank lines are ignored.
func parseList(name string, data []byte) ([]string, error) {
	var ids []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if id := strings.TrimSpace(sc.Text()); id != "" {
			ids = append(ids, id)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Configuration(name, err)
	}
	return ids, nil
}

func truncate(ids []string, n int) []string {
	if len(ids) > n {
		return ids[:n:n]
	}
	return ids
}

package trials

import (
	"github.com/kbukum/prism/condition"
)

// LoadCondition loads the trial mask of c aligned to its identifier lists.
// For the debug condition the result is the leading block covering the
// truncated enrollment and test lists.
func LoadCondition(f *condition.Filter, c condition.Condition) (*Matrix, error) {
	name, err := f.TrialFile(c)
	if err != nil {
		return nil, err
	}
	enroll, err := f.ListedIdentifiers(c, condition.Enroll)
	if err != nil {
		return nil, err
	}
	test, err := f.ListedIdentifiers(c, condition.Test)
	if err != nil {
		return nil, err
	}
	m, err := Load(f.FS(), name, enroll, test)
	if err != nil {
		return nil, err
	}
	if c.Strategy == condition.Debug {
		limit := f.Settings().DebugEvalLimit
		m = m.Head(limit, limit)
	}
	return m, nil
}

package trials

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/prism/condition"
	"github.com/kbukum/prism/errors"
	"github.com/kbukum/prism/keystore"
	"github.com/kbukum/prism/logger"
	"github.com/kbukum/prism/testutil"
)

func newFilter(t *testing.T, c *testutil.Corpus) *condition.Filter {
	t.Helper()
	f, err := condition.NewFilter(c.FS(), condition.DefaultSettings(), logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestLoadCondition(t *testing.T) {
	f := newFilter(t, testutil.NewCorpus().AddCondition(3, "m", enroll, test, mask))
	c, _ := condition.New(keystore.Male, 3)

	m, err := LoadCondition(f, c)
	if err != nil {
		t.Fatalf("LoadCondition() error = %v", err)
	}
	if diff := cmp.Diff(enroll, m.Enroll()); diff != "" {
		t.Errorf("Enroll() mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(test, m.Test()); diff != "" {
		t.Errorf("Test() mismatch:\n%s", diff)
	}
	if o, _ := m.Lookup("e2", "t3"); o != Target {
		t.Errorf("Lookup(e2, t3) = %v", o)
	}
}

func TestLoadCondition_MissingFiles(t *testing.T) {
	c, _ := condition.New(keystore.Female, 1)
	corpus := testutil.NewCorpus().
		AddRaw(testutil.ConditionFile(1, "f", "trnids"), "e1\n").
		AddRaw(testutil.ConditionFile(1, "f", "tstids"), "t1\n")

	_, err := LoadCondition(newFilter(t, corpus), c)
	if !errors.HasCode(err, errors.ErrCodeConfiguration) {
		t.Fatalf("missing mask error = %v, want CONFIGURATION_ERROR", err)
	}

	corpus.AddRaw(testutil.ConditionFile(1, "f", "keymask"), "1\n")
	if _, err := LoadCondition(newFilter(t, corpus), c); err != nil {
		t.Fatalf("LoadCondition() error = %v", err)
	}
}

func TestLoadCondition_Debug(t *testing.T) {
	const n = 12
	var e, te []string
	full := make([][]int, n)
	for i := range n {
		e = append(e, fmt.Sprintf("e%02d", i))
		te = append(te, fmt.Sprintf("t%02d", i))
		full[i] = make([]int, n)
		for j := range n {
			if i == j {
				full[i][j] = 1
			}
		}
	}
	f := newFilter(t, testutil.NewCorpus().AddCondition(5, "f", e, te, full))

	m, err := LoadCondition(f, condition.NewDebug())
	if err != nil {
		t.Fatalf("LoadCondition() error = %v", err)
	}
	limit := condition.DefaultDebugEvalLimit
	if r, c := m.Dims(); r != limit || c != limit {
		t.Fatalf("Dims() = %d, %d; want %d, %d", r, c, limit, limit)
	}
	if diff := cmp.Diff(e[:limit], m.Enroll()); diff != "" {
		t.Errorf("Enroll() mismatch:\n%s", diff)
	}
	for i := range limit {
		for j := range limit {
			if got, want := m.At(i, j), Outcome(full[i][j]); got != want {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

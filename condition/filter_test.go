package condition

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/prism/errors"
	"github.com/kbukum/prism/keystore"
	"github.com/kbukum/prism/logger"
	"github.com/kbukum/prism/testutil"
)

func newFilter(t *testing.T, c *testutil.Corpus) *Filter {
	t.Helper()
	f, err := NewFilter(c.FS(), DefaultSettings(), logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func loadTable(t *testing.T, c *testutil.Corpus, dbs ...string) *keystore.Table {
	t.Helper()
	table, err := keystore.NewStore(c.FS(), logger.Nop()).Load(dbs)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

// poolCorpus holds one passing row and one row failing each predicate.
func poolCorpus() *testutil.Corpus {
	pass := testutil.TrainRow("pass", "MIX04", "f")

	male := testutil.TrainRow("male", "MIX04", "m")
	spanish := testutil.TrainRow("spanish", "MIX04", "f")
	spanish.Language = "SPA"
	use := testutil.TrainRow("use", "MIX04", "f")
	use.Language = "USE"
	short := testutil.TrainRow("short", "MIX04", "f")
	short.NominalLength = 100
	mic := testutil.TrainRow("mic", "MIX04", "f")
	mic.SpeechType = "mic"
	cell := testutil.TrainRow("cell", "MIX04", "f")
	cell.ChannelType = "cel"
	loud := testutil.TrainRow("loud", "MIX04", "f")
	loud.VocalEffort = "high"
	quiet := testutil.TrainRow("quiet", "MIX04", "f")
	quiet.VocalEffort = "low"
	heldOut := testutil.TrainRow("heldout", "MIX10", "f")

	return testutil.NewCorpus().
		AddKeys("MIX04", pass, male, spanish, use, short, mic, cell, loud, quiet).
		AddKeys("MIX10", heldOut)
}

func TestTrainingPool_Standard(t *testing.T) {
	c := poolCorpus()
	table := loadTable(t, c, "MIX04", "MIX10")
	cond, _ := New(keystore.Female, 5)

	got := newFilter(t, c).TrainingPool(table, cond)
	if diff := cmp.Diff([]string{"pass", "use"}, got); diff != "" {
		t.Errorf("pool mismatch (-want +got):\n%s", diff)
	}

	preds := TrainingPredicates(cond, DefaultEvalDatabase)
	if len(preds) != 7 {
		t.Fatalf("expected 7 predicates, got %d", len(preds))
	}
	for _, id := range got {
		rec, _ := table.Get(id)
		for _, p := range preds {
			if !p.Keep(rec) {
				t.Errorf("%s violates %s", id, p.Name)
			}
		}
	}
}

func TestTrainingPool_SameForEveryCode(t *testing.T) {
	c := poolCorpus()
	table := loadTable(t, c, "MIX04", "MIX10")
	f := newFilter(t, c)
	first, _ := New(keystore.Female, 1)
	want := f.TrainingPool(table, first)
	for code := MinCode; code <= MaxCode; code++ {
		cond, _ := New(keystore.Female, code)
		if diff := cmp.Diff(want, f.TrainingPool(table, cond)); diff != "" {
			t.Errorf("code %d differs:\n%s", code, diff)
		}
	}
}

func TestTrainingPool_Male(t *testing.T) {
	c := poolCorpus()
	table := loadTable(t, c, "MIX04", "MIX10")
	cond, _ := New(keystore.Male, 2)
	if diff := cmp.Diff([]string{"male"}, newFilter(t, c).TrainingPool(table, cond)); diff != "" {
		t.Errorf("pool mismatch (-want +got):\n%s", diff)
	}
}

func TestTrainingPool_DebugUsesHeldOutDatabase(t *testing.T) {
	c := poolCorpus()
	table := loadTable(t, c, "MIX04", "MIX10")
	got := newFilter(t, c).TrainingPool(table, NewDebug())
	if diff := cmp.Diff([]string{"heldout"}, got); diff != "" {
		t.Errorf("pool mismatch (-want +got):\n%s", diff)
	}
}

func TestTrainingPool_DebugTruncates(t *testing.T) {
	var rows []testutil.Row
	for i := range 30 {
		rows = append(rows, testutil.TrainRow(fmt.Sprintf("s%02d", i), "MIX10", "f"))
	}
	c := testutil.NewCorpus().AddKeys("MIX10", rows...)
	table := loadTable(t, c, "MIX10")

	got := newFilter(t, c).TrainingPool(table, NewDebug())
	if len(got) != DefaultDebugTrainLimit {
		t.Fatalf("expected %d ids, got %d", DefaultDebugTrainLimit, len(got))
	}
	if got[0] != "s00" || got[19] != "s19" {
		t.Errorf("expected the first ids in table order, got %v", got)
	}
}

func TestTrainingPool_LanguageExcludesAll(t *testing.T) {
	a := testutil.TrainRow("s1", "MIX04", "f")
	a.Language = "FRE"
	b := testutil.TrainRow("s2", "SWPH2", "f")
	b.Language = "ARA"
	c := testutil.NewCorpus().AddKeys("MIX04", a).AddKeys("SWPH2", b)
	table := loadTable(t, c, "MIX04", "SWPH2")

	cond, _ := New(keystore.Female, 5)
	if got := newFilter(t, c).TrainingPool(table, cond); len(got) != 0 {
		t.Errorf("expected empty pool, got %v", got)
	}
}

func TestEvaluationIdentifiers(t *testing.T) {
	c := testutil.NewCorpus().
		AddCondition(5, "f", []string{"e2", "e1"}, []string{"t1", "t2", "t3"}, [][]int{{1, 0, -1}, {0, 1, 0}}).
		AddRaw(testutil.ConditionFile(6, "m", "trnids"), "  e1 \n\n e2\n")
	f := newFilter(t, c)
	cond, _ := New(keystore.Female, 5)

	enroll, err := f.EvaluationIdentifiers(cond, Enroll)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"e2", "e1"}, enroll); diff != "" {
		t.Errorf("enroll mismatch (-want +got):\n%s", diff)
	}
	test, err := f.EvaluationIdentifiers(cond, Test)
	if err != nil {
		t.Fatal(err)
	}
	if len(test) != 3 {
		t.Errorf("expected 3 test ids, got %v", test)
	}

	trimmed, _ := New(keystore.Male, 6)
	got, err := f.EvaluationIdentifiers(trimmed, Enroll)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"e1", "e2"}, got); diff != "" {
		t.Errorf("whitespace handling (-want +got):\n%s", diff)
	}
}

func TestEvaluationIdentifiers_Missing(t *testing.T) {
	f := newFilter(t, testutil.NewCorpus())
	cond, _ := New(keystore.Male, 9)
	_, err := f.EvaluationIdentifiers(cond, Test)
	if !errors.HasCode(err, errors.ErrCodeConfiguration) {
		t.Fatalf("expected CONFIGURATION_ERROR, got %v", err)
	}
	if _, err := f.TrialFile(cond); !errors.HasCode(err, errors.ErrCodeConfiguration) {
		t.Fatalf("expected CONFIGURATION_ERROR for trial file, got %v", err)
	}
}

func TestEvaluationIdentifiers_DebugTruncates(t *testing.T) {
	var enroll, test []string
	mask := make([][]int, 15)
	for i := range 15 {
		enroll = append(enroll, fmt.Sprintf("e%02d", i))
		test = append(test, fmt.Sprintf("t%02d", i))
		mask[i] = make([]int, 15)
	}
	f := newFilter(t, testutil.NewCorpus().AddCondition(5, "f", enroll, test, mask))

	for _, role := range []Role{Enroll, Test} {
		ids, err := f.EvaluationIdentifiers(NewDebug(), role)
		if err != nil {
			t.Fatal(err)
		}
		if len(ids) != DefaultDebugEvalLimit {
			t.Errorf("%s: expected %d ids, got %d", role, DefaultDebugEvalLimit, len(ids))
		}
		full, err := f.ListedIdentifiers(NewDebug(), role)
		if err != nil {
			t.Fatal(err)
		}
		if len(full) != 15 {
			t.Errorf("%s: expected complete list of 15 ids, got %d", role, len(full))
		}
	}
}

func TestTrialFile(t *testing.T) {
	f := newFilter(t, testutil.NewCorpus().AddCondition(2, "m", []string{"e"}, []string{"t"}, [][]int{{1}}))
	cond, _ := New(keystore.Male, 2)
	got, err := f.TrialFile(cond)
	if err != nil {
		t.Fatal(err)
	}
	if got != "TRIALS/sre10.conditions/sre10c02,m.keymask" {
		t.Errorf("unexpected trial file %q", got)
	}
}

func TestNewFilter_InvalidSettings(t *testing.T) {
	_, err := NewFilter(testutil.NewCorpus().FS(), Settings{EvalDatabase: "MIX10"}, nil)
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
}

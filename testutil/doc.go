// Package testutil builds synthetic PRISM data trees for tests.
//
//	fsys := testutil.NewCorpus().
//	    AddKeys("MIX04", testutil.TrainRow("s1", "MIX04", "f")).
//	    AddCondition(5, "f", []string{"s1"}, []string{"s2"}, [][]int{{1}}).
//	    FS()
//
// The tree mirrors the on-disk layout: KEYS/<DB>.key and
// TRIALS/sre10.conditions/sre10c<NN>,<g>.{trnids,tstids,keymask}.
package testutil

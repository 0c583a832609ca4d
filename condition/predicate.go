package condition

import (
	"slices"

	"github.com/kbukum/prism/keystore"
)

// Predicate is one named training-pool test.
type Predicate struct {
	Name string
	Keep func(keystore.Record) bool
}

var (
	trainLanguages   = []string{"ENG", "USE"}
	excludedEfforts  = []string{"high", "low"}
	minNominalLength = 100.0
	trainSpeechType  = "tel"
	trainChannelType = "phn"
)

// TrainingPredicates returns the conjunctive training-pool tests of c.
// The same predicates apply to every condition code.
func TrainingPredicates(c Condition, evalDatabase string) []Predicate {
	database := Predicate{
		Name: "database",
		Keep: func(r keystore.Record) bool { return r.Database != evalDatabase },
	}
	if c.Strategy == Debug {
		database.Keep = func(r keystore.Record) bool { return r.Database == evalDatabase }
	}

	return []Predicate{
		{"gender", func(r keystore.Record) bool { return r.Gender == c.Gender }},
		{"language", func(r keystore.Record) bool { return slices.Contains(trainLanguages, r.Language) }},
		// short segments are usually excerpts of longer ones
		{"nominal_length", func(r keystore.Record) bool { return r.NominalLength > minNominalLength }},
		{"speech_type", func(r keystore.Record) bool { return r.SpeechType == trainSpeechType }},
		{"channel_type", func(r keystore.Record) bool { return r.ChannelType == trainChannelType }},
		{"vocal_effort", func(r keystore.Record) bool { return !slices.Contains(excludedEfforts, r.VocalEffort) }},
		database,
	}
}

// allOf reports whether a record passes every predicate.
func allOf(preds []Predicate) func(keystore.Record) bool {
	return func(r keystore.Record) bool {
		for _, p := range preds {
			if !p.Keep(r) {
				return false
			}
		}
		return true
	}
}

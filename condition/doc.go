// Package condition selects the recordings that make up one SRE10
// evaluation condition.
//
// A Condition is a (gender, code) pair with a Strategy. The standard
// strategy builds the training pool from every record that passes seven
// conjunctive predicates and excludes the held-out evaluation database.
// The debug strategy keeps only the held-out database and truncates every
// list to a small cap for quick local runs.
//
// Enrollment and test identifier lists and the trial mask are static files
// under TRIALS/sre10.conditions, named sre10c<NN>,<g>.{trnids,tstids,keymask}.
package condition

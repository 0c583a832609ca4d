// Package export writes a snapshot of a constructed protocol to SQLite.
//
// Each Write call adds one run. Tables:
//
//	runs(run_id, protocol, instance_id, created_at)
//	records(run_id, unique_name, database, target, uri, channel, ...)
//	partitions(run_id, partition, position, unique_name, extra)
//	trials(run_id, enroll, test, outcome)
//
// Untested trial cells are omitted. Preprocessor outputs are stored as JSON
// in partitions.extra.
package export

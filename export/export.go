package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kbukum/prism/errors"
	"github.com/kbukum/prism/logger"
	"github.com/kbukum/prism/partition"
	"github.com/kbukum/prism/trials"
)

// Snapshot is the protocol surface an export reads.
type Snapshot interface {
	Name() string
	InstanceID() string
	Iterate(n partition.Name) (partition.Result, error)
	Trials() *trials.Matrix
}

// Summary describes one written run.
type Summary struct {
	RunID      string `json:"run_id" yaml:"run_id"`
	Protocol   string `json:"protocol" yaml:"protocol"`
	Records    int    `json:"records" yaml:"records"`
	Partitions int    `json:"partition_rows" yaml:"partition_rows"`
	Trials     int    `json:"trials" yaml:"trials"`
}

// WriteFile opens or creates the SQLite database at path and writes p.
func WriteFile(ctx context.Context, path string, p Snapshot) (Summary, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return Summary{}, errors.Internal(err).WithDetail(logger.FieldPath, path)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		return Summary{}, errors.Internal(err).WithDetail(logger.FieldPath, path)
	}
	return Write(ctx, db, p)
}

// Write stores p as a new run inside one transaction.
func Write(ctx context.Context, db *sql.DB, p Snapshot) (Summary, error) {
	start := time.Now()
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return Summary{}, internal("schema", err)
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return Summary{}, internal("begin", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	sum := Summary{RunID: uuid.NewString(), Protocol: p.Name()}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, protocol, instance_id, created_at) VALUES (?, ?, ?, ?)`,
		sum.RunID, sum.Protocol, p.InstanceID(), time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return Summary{}, internal("runs", err)
	}

	if err := writePartitions(ctx, tx, p, &sum); err != nil {
		return Summary{}, err
	}
	if err := writeTrials(ctx, tx, p.Trials(), &sum); err != nil {
		return Summary{}, err
	}
	if err := tx.Commit(); err != nil {
		return Summary{}, internal("commit", err)
	}

	fields := logger.DurationFields("export", time.Since(start))
	fields[logger.FieldProtocol] = sum.Protocol
	fields["run_id"] = sum.RunID
	fields["records"] = sum.Records
	fields["trials"] = sum.Trials
	logger.Get(logger.ComponentExport).Info("protocol exported", fields)
	return sum, nil
}

func writePartitions(ctx context.Context, tx *sql.Tx, p Snapshot, sum *Summary) error {
	recStmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO records (
		run_id, unique_name, "database", target, uri, channel, session_id, gender,
		year_of_birth, year_of_recording, age, speech_type, channel_type,
		nominal_length, language, native_language, vocal_effort
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return internal("records", err)
	}
	defer recStmt.Close()

	partStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO partitions (run_id, "partition", position, unique_name, extra) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return internal("partitions", err)
	}
	defer partStmt.Close()

	for _, n := range partition.Names {
		res, err := p.Iterate(n)
		if err != nil {
			return err
		}
		pos := 0
		for item := range res.Items {
			r := item.Record
			out, err := recStmt.ExecContext(ctx,
				sum.RunID, item.ID, r.Database, r.Target, r.URI, r.Channel, r.SessionID, string(r.Gender),
				r.YearOfBirth, r.YearOfRecording, r.Age, r.SpeechType, r.ChannelType,
				r.NominalLength, r.Language, r.NativeLanguage, r.VocalEffort,
			)
			if err != nil {
				return internal("records", err).WithDetail("unique_name", item.ID)
			}
			if added, _ := out.RowsAffected(); added > 0 {
				sum.Records++
			}

			extra, err := encodeExtra(item.Extra)
			if err != nil {
				return errors.InvalidInput("extra", err.Error()).
					WithDetail(logger.FieldPartition, string(n)).
					WithDetail("unique_name", item.ID)
			}
			if _, err := partStmt.ExecContext(ctx, sum.RunID, string(n), pos, item.ID, extra); err != nil {
				return internal("partitions", err).WithDetail(logger.FieldPartition, string(n))
			}
			pos++
			sum.Partitions++
		}
	}
	return nil
}

func writeTrials(ctx context.Context, tx *sql.Tx, m *trials.Matrix, sum *Summary) error {
	if m == nil {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO trials (run_id, enroll, test, outcome) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return internal("trials", err)
	}
	defer stmt.Close()

	for tr := range m.Trials() {
		if _, err := stmt.ExecContext(ctx, sum.RunID, tr.Enroll, tr.Test, int(tr.Outcome)); err != nil {
			return internal("trials", err)
		}
		sum.Trials++
	}
	return nil
}

func encodeExtra(extra map[string]any) (any, error) {
	if len(extra) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(extra)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func internal(op string, err error) *errors.AppError {
	return errors.Internal(err).WithDetail(logger.FieldOperation, op)
}

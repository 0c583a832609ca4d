package export

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	protocol    TEXT NOT NULL,
	instance_id TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS records (
	run_id            TEXT NOT NULL REFERENCES runs(run_id),
	unique_name       TEXT NOT NULL,
	"database"        TEXT NOT NULL,
	target            TEXT NOT NULL,
	uri               TEXT NOT NULL,
	channel           INTEGER NOT NULL,
	session_id        TEXT NOT NULL,
	gender            TEXT NOT NULL,
	year_of_birth     TEXT NOT NULL,
	year_of_recording TEXT NOT NULL,
	age               TEXT NOT NULL,
	speech_type       TEXT NOT NULL,
	channel_type      TEXT NOT NULL,
	nominal_length    REAL NOT NULL,
	language          TEXT NOT NULL,
	native_language   TEXT NOT NULL,
	vocal_effort      TEXT NOT NULL,
	PRIMARY KEY (run_id, unique_name)
);

CREATE TABLE IF NOT EXISTS partitions (
	run_id      TEXT NOT NULL REFERENCES runs(run_id),
	"partition" TEXT NOT NULL,
	position    INTEGER NOT NULL,
	unique_name TEXT NOT NULL,
	extra       TEXT,
	PRIMARY KEY (run_id, "partition", position)
);

CREATE TABLE IF NOT EXISTS trials (
	run_id  TEXT NOT NULL REFERENCES runs(run_id),
	enroll  TEXT NOT NULL,
	test    TEXT NOT NULL,
	outcome INTEGER NOT NULL,
	PRIMARY KEY (run_id, enroll, test)
);

CREATE INDEX IF NOT EXISTS idx_trials_test ON trials(run_id, test);
`

package report

import (
	"context"
	"database/sql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"time"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS runs (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	started        INTEGER NOT NULL,
	input          TEXT    NOT NULL,
	hash           TEXT    NOT NULL,
	probing        TEXT    NOT NULL,
	records        INTEGER NOT NULL,
	capacity       INTEGER NOT NULL,
	slots          INTEGER NOT NULL,
	parse_ticks    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS results (
	run_id         INTEGER NOT NULL REFERENCES runs(id),
	target         TEXT    NOT NULL,
	builds         INTEGER NOT NULL,
	build_ticks    INTEGER NOT NULL,
	build_wall_ns  INTEGER NOT NULL,
	searches       INTEGER NOT NULL,
	search_ticks   INTEGER NOT NULL,
	search_wall_ns INTEGER NOT NULL,
	digest         TEXT    NOT NULL
);`

// Entry - One target result of one recorded run
type Entry struct {
	RunID       int64
	Started     time.Time
	Input       string
	Hash        string
	Probing     string
	Records     int
	Target      string
	BuildTicks  int64
	SearchTicks int64
	Digest      string
}

// History - Benchmark runs recorded in a SQLite database
type History struct {
	db *sql.DB
}

// OpenHistory - Opens or creates the history database at path
func OpenHistory(ctx context.Context, path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open history %s", path)
	}

	if _, err = db.ExecContext(ctx, historySchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "unable to create history schema in %s", path)
	}

	return &History{db: db}, nil
}

// Close - Closes the database
func (H *History) Close() error {
	return H.db.Close()
}

// Record - Stores r as one run with one row per target result
func (H *History) Record(ctx context.Context, r Report) (runID int64, err error) {
	tx, err := H.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "BeginTx")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started, input, hash, probing, records, capacity, slots, parse_ticks) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Started.UnixNano(), r.Input, r.Hash, r.Probing, r.Records, r.Capacity, r.NumberOfSlots, r.ParseTicks)
	if err != nil {
		return 0, errors.Wrap(err, "insert run")
	}

	runID, err = res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "LastInsertId")
	}

	for _, result := range r.Results {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO results (run_id, target, builds, build_ticks, build_wall_ns, searches, search_ticks, search_wall_ns, digest)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, result.Target,
			result.Build.Count, result.Build.Ticks, int64(result.Build.Wall),
			result.Search.Count, result.Search.Ticks, int64(result.Search.Wall),
			result.Digest)
		if err != nil {
			return 0, errors.Wrapf(err, "insert result of %s", result.Target)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "Commit")
	}

	log.WithFields(log.Fields{"run": runID, "results": len(r.Results)}).Debug("run recorded")

	return runID, nil
}

// Entries - Returns all recorded target results, oldest run first
func (H *History) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := H.db.QueryContext(ctx, `
		SELECT r.id, r.started, r.input, r.hash, r.probing, r.records, s.target, s.build_ticks, s.search_ticks, s.digest
		FROM runs r JOIN results s ON s.run_id = r.id
		ORDER BY r.id, s.rowid`)
	if err != nil {
		return nil, errors.Wrap(err, "query history")
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var started int64
		if err = rows.Scan(&e.RunID, &started, &e.Input, &e.Hash, &e.Probing, &e.Records, &e.Target, &e.BuildTicks, &e.SearchTicks, &e.Digest); err != nil {
			return nil, errors.Wrap(err, "scan history")
		}
		e.Started = time.Unix(0, started)
		entries = append(entries, e)
	}

	return entries, errors.Wrap(rows.Err(), "read history")
}

package ledger

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"time"

	"openf1lapexport/pkg/openf1"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// Entry is one session processed by an export run.
type Entry struct {
	ID          int64
	RunAt       time.Time
	MeetingKey  int
	SessionKey  int
	SessionName string
	Path        string
	Rows        int
	Skipped     bool
	Reason      string
}

// Manager keeps the history of export runs in a SQLite database.
type Manager struct {
	db *sql.DB
	mu sync.Mutex
}

func NewManager(path string) (*Manager, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Printf("error opening database: %s\n", err)
		return nil, errors.Wrapf(err, "opening ledger %s", path)
	}

	_, err = db.Exec(buildCreateExportsTable())
	if err != nil {
		log.Printf("error init database: %s\n", err)
		db.Close()
		return nil, errors.Wrapf(err, "initialising ledger %s", path)
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.db.Close()
}

// Record stores one entry per result, all stamped with runAt.
func (m *Manager) Record(ctx context.Context, runAt time.Time, results []openf1.ExportResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "starting ledger transaction")
	}
	stamp := runAt.UTC().Format(time.RFC3339Nano)
	for _, r := range results {
		_, err := tx.ExecContext(ctx, buildInsertExportCommand(),
			stamp, r.MeetingKey, r.SessionKey, r.SessionName, r.Path, r.Rows, boolToInt(r.Skipped), r.Reason)
		if err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "recording session %q", r.SessionName)
		}
	}
	return errors.Wrap(tx.Commit(), "committing ledger transaction")
}

// ListRuns returns up to limit entries, newest first.
func (m *Manager) ListRuns(ctx context.Context, limit int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	query, read := buildSelectRunsCommand()
	rows, err := m.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "listing ledger entries")
	}
	return read(rows)
}

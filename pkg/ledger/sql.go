package ledger

import (
	"database/sql"
	"time"
)

func buildCreateExportsTable() string {
	return `CREATE TABLE IF NOT EXISTS exports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_at TEXT NOT NULL,
		meeting_key INTEGER NOT NULL,
		session_key INTEGER NOT NULL,
		session_name TEXT NOT NULL,
		path TEXT NOT NULL,
		row_count INTEGER NOT NULL,
		skipped INTEGER NOT NULL,
		reason TEXT NOT NULL);`
}

func buildInsertExportCommand() string {
	fields := "run_at, meeting_key, session_key, session_name, path, row_count, skipped, reason"
	return `INSERT INTO exports (` + fields + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
}

func buildSelectRunsCommand() (string, func(*sql.Rows) ([]Entry, error)) {
	fields := "id, run_at, meeting_key, session_key, session_name, path, row_count, skipped, reason"
	return `SELECT ` + fields + ` FROM exports ORDER BY id DESC LIMIT ?`, processSelectRunsRows
}

func processSelectRunsRows(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		var runAt string
		var skipped int
		err := rows.Scan(&e.ID, &runAt, &e.MeetingKey, &e.SessionKey, &e.SessionName, &e.Path, &e.Rows, &skipped, &e.Reason)
		if err != nil {
			return entries, err
		}
		e.RunAt, err = time.Parse(time.RFC3339Nano, runAt)
		if err != nil {
			return entries, err
		}
		e.Skipped = skipped == 1
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

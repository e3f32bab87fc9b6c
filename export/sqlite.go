package export

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/arloliu/telelog/series"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS session (
	name       TEXT NOT NULL,
	start_time INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS series (
	id              INTEGER PRIMARY KEY,
	name            TEXT NOT NULL,
	unit            TEXT NOT NULL,
	type            TEXT NOT NULL,
	definition_time INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS points (
	series_id  INTEGER NOT NULL REFERENCES series(id),
	ts         INTEGER NOT NULL,
	num_value  REAL,
	text_value TEXT,
	PRIMARY KEY (series_id, ts)
);`

// SQLiteExporter writes a session into a new SQLite database file.
//
// Timestamps are stored as SQLite INTEGER (int64); values above
// math.MaxInt64 wrap to negative numbers.
type SQLiteExporter struct{}

var _ FileExporter = (*SQLiteExporter)(nil)

func (e *SQLiteExporter) ExportFile(sess *series.Session, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM points; DELETE FROM series; DELETE FROM session;"); err != nil {
		return fmt.Errorf("failed to clear tables: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO session (name, start_time) VALUES (?, ?)",
		sess.Name(), int64(sess.StartTime())); err != nil { //nolint:gosec
		return fmt.Errorf("failed to insert session: %w", err)
	}

	seriesStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO series (id, name, unit, type, definition_time) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer seriesStmt.Close()

	pointStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO points (series_id, ts, num_value, text_value) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer pointStmt.Close()

	for _, s := range sess.AllSeries() {
		if _, err := seriesStmt.ExecContext(ctx, s.ID, s.Name, s.Unit, s.Type.String(),
			int64(s.DefinitionTime)); err != nil { //nolint:gosec
			return fmt.Errorf("failed to insert series %d: %w", s.ID, err)
		}

		for ts, v := range s.All() {
			var num sql.NullFloat64
			var text sql.NullString
			if f, ok := v.Float(); ok {
				num = sql.NullFloat64{Float64: f, Valid: true}
			} else {
				str, _ := v.Text()
				text = sql.NullString{String: str, Valid: true}
			}

			if _, err := pointStmt.ExecContext(ctx, s.ID, int64(ts), num, text); err != nil { //nolint:gosec
				return fmt.Errorf("failed to insert point of series %d: %w", s.ID, err)
			}
		}
	}

	return tx.Commit()
}

func (e *SQLiteExporter) Extension() string {
	return "db"
}

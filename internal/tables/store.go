package tables

import (
	"database/sql"
	"fmt"

	"github.com/ntguardian/TacSubGame/internal/sonar"
	_ "modernc.org/sqlite"
)

// Store persists detection tables in a SQLite file for downstream game
// tooling.
type Store struct {
	*sql.DB
}

// OpenStore opens (creating if needed) the SQLite database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS detection_rows (
			class             TEXT,
			category_field    TEXT,
			category          TEXT,
			detector          TEXT,
			emitter           TEXT,
			range_kyd         DOUBLE,
			tl                DOUBLE,
			se                DOUBLE,
			se_threshold      BIGINT,
			detection_prob    DOUBLE,
			raw_modifier      DOUBLE,
			modifier          DOUBLE,
			timestamp         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db}, nil
}

// SaveTable replaces any previously stored rows for the table's class with
// the given rows, atomically.
func (s *Store) SaveTable(t sonar.Table) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM detection_rows WHERE class = ?`, t.Class); err != nil {
		return fmt.Errorf("clear %s rows: %w", t.Class, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO detection_rows
			(class, category_field, category, detector, emitter, range_kyd,
			 tl, se, se_threshold, detection_prob, raw_modifier, modifier)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range t.Rows {
		if _, err := stmt.Exec(
			t.Class, t.CategoryField, r.Category, r.Detector, r.Emitter,
			r.RangeKyd, r.TL, r.SE, r.SEThreshold, r.DetectionProb,
			r.RawModifier, r.Modifier,
		); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}

	return tx.Commit()
}

// LoadTable reads back all stored rows for a sonar class, in insertion
// order.
func (s *Store) LoadTable(class string) (sonar.Table, error) {
	rows, err := s.Query(`
		SELECT category_field, category, detector, emitter, range_kyd,
		       tl, se, se_threshold, detection_prob, raw_modifier, modifier
		FROM detection_rows WHERE class = ? ORDER BY rowid
	`, class)
	if err != nil {
		return sonar.Table{}, err
	}
	defer rows.Close()

	t := sonar.Table{Class: class}
	for rows.Next() {
		var r sonar.Row
		if err := rows.Scan(
			&t.CategoryField, &r.Category, &r.Detector, &r.Emitter,
			&r.RangeKyd, &r.TL, &r.SE, &r.SEThreshold, &r.DetectionProb,
			&r.RawModifier, &r.Modifier,
		); err != nil {
			return sonar.Table{}, err
		}
		t.Rows = append(t.Rows, r)
	}
	return t, rows.Err()
}

// RowCount returns the number of stored rows for a sonar class.
func (s *Store) RowCount(class string) (int, error) {
	var n int
	err := s.QueryRow(`SELECT COUNT(*) FROM detection_rows WHERE class = ?`, class).Scan(&n)
	return n, err
}

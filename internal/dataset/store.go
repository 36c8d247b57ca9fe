package dataset

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const (
	bodyColumn  = "Answer"
	labelPrefix = "Answer.f1."
	labelSuffix = ".raw"
)

// Store persists the reference corpus in SQLite. The core only ever
// reads from it; writes happen through ImportCSV.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the corpus database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return s, nil
}

// init creates the necessary tables if they don't exist
func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			body  TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS labels (
			entry_id  INTEGER NOT NULL,
			name      TEXT NOT NULL,
			value     TEXT NOT NULL,
			FOREIGN KEY (entry_id) REFERENCES entries(id)
		);

		CREATE INDEX IF NOT EXISTS idx_labels_entry ON labels(entry_id);
		CREATE INDEX IF NOT EXISTS idx_labels_name ON labels(name);
	`)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ImportCSV loads a labeled corpus CSV into the store, replacing any
// previously imported rows. The file must carry an "Answer" body column;
// columns named "Answer.f1.<tag>.raw" become labels with their raw
// values preserved. Returns the number of imported entries.
func (s *Store) ImportCSV(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read corpus header: %w", err)
	}

	bodyIdx := -1
	labelIdx := make(map[int]string)
	for i, col := range header {
		if col == bodyColumn {
			bodyIdx = i
			continue
		}
		if strings.HasPrefix(col, labelPrefix) && strings.HasSuffix(col, labelSuffix) {
			name := strings.TrimSuffix(strings.TrimPrefix(col, labelPrefix), labelSuffix)
			labelIdx[i] = strings.ToLower(name)
		}
	}
	if bodyIdx == -1 {
		return 0, fmt.Errorf("corpus file %s has no %q column", path, bodyColumn)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM labels`); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return 0, err
	}

	count := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read corpus row: %w", err)
		}
		if bodyIdx >= len(record) {
			continue
		}
		body := strings.TrimSpace(record[bodyIdx])
		if body == "" {
			continue
		}
		res, err := tx.Exec(`INSERT INTO entries (body) VALUES (?)`, body)
		if err != nil {
			return 0, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		for i, name := range labelIdx {
			if i >= len(record) {
				continue
			}
			if _, err := tx.Exec(`INSERT INTO labels (entry_id, name, value) VALUES (?, ?, ?)`,
				id, name, record[i]); err != nil {
				return 0, err
			}
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

// Table loads the whole corpus into an immutable in-memory table for
// sampling.
func (s *Store) Table() (*Table, error) {
	rows := make(map[int64]*Row)
	order := []int64{}

	er, err := s.db.Query(`SELECT id, body FROM entries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer er.Close()
	for er.Next() {
		var id int64
		var body string
		if err := er.Scan(&id, &body); err != nil {
			return nil, err
		}
		rows[id] = &Row{Body: body, Labels: make(map[string]string)}
		order = append(order, id)
	}
	if err := er.Err(); err != nil {
		return nil, err
	}

	lr, err := s.db.Query(`SELECT entry_id, name, value FROM labels`)
	if err != nil {
		return nil, err
	}
	defer lr.Close()
	for lr.Next() {
		var id int64
		var name, value string
		if err := lr.Scan(&id, &name, &value); err != nil {
			return nil, err
		}
		if row, ok := rows[id]; ok {
			row.Labels[name] = value
		}
	}
	if err := lr.Err(); err != nil {
		return nil, err
	}

	out := make([]Row, 0, len(order))
	for _, id := range order {
		out = append(out, *rows[id])
	}
	return NewTable(out), nil
}

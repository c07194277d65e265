// Package journal keeps an append-only SQLite copy of committed sales for audit.
// It is write-mostly: the in-memory ledger stays authoritative and is never rebuilt from it.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"medsupply/internal/domain"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sales (
            id TEXT PRIMARY KEY,
            total REAL NOT NULL,
            created_at TEXT NOT NULL
        );`,
	`CREATE TABLE IF NOT EXISTS sale_lines (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            sale_id TEXT NOT NULL,
            medicine_id TEXT NOT NULL,
            name TEXT NOT NULL,
            quantity INTEGER NOT NULL,
            unit_price REAL NOT NULL,
            subtotal REAL NOT NULL,
            FOREIGN KEY(sale_id) REFERENCES sales(id)
        );`,
}

// SaleRow is a journalled sale header.
type SaleRow struct {
	ID        string  `db:"id" json:"id"`
	Total     float64 `db:"total" json:"total"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}

// LineRow is a journalled sale line.
type LineRow struct {
	SaleID     string  `db:"sale_id" json:"sale_id"`
	MedicineID string  `db:"medicine_id" json:"medicine_id"`
	Name       string  `db:"name" json:"name"`
	Quantity   int64   `db:"quantity" json:"quantity"`
	UnitPrice  float64 `db:"unit_price" json:"unit_price"`
	Subtotal   float64 `db:"subtotal" json:"subtotal"`
}

type Journal struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at dsn and creates the schema.
func Open(dsn string) (*Journal, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to journal: %w", err)
	}
	db.SetMaxOpenConns(1)
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("journal migration failed: %w", err)
		}
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error { return j.db.Close() }

// RecordSale writes the sale and its lines in one transaction.
func (j *Journal) RecordSale(ctx context.Context, s domain.Sale) error {
	tx, err := j.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unable to start journal transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO sales (id, total, created_at) VALUES (?, ?, ?)`,
		s.ID, s.Total, s.CreatedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("unable to insert sale %s: %w", s.ID, err)
	}
	for _, l := range s.Lines {
		if _, err := tx.ExecContext(ctx, `INSERT INTO sale_lines (sale_id, medicine_id, name, quantity, unit_price, subtotal) VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID, l.MedicineID, l.Name, l.Quantity, l.UnitPrice, l.UnitPrice*float64(l.Quantity)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("unable to insert sale line %s: %w", l.MedicineID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("unable to commit sale %s: %w", s.ID, err)
	}
	return nil
}

// Sales returns journalled sale headers oldest first.
func (j *Journal) Sales(ctx context.Context) ([]SaleRow, error) {
	var rows []SaleRow
	if err := j.db.SelectContext(ctx, &rows, `SELECT id, total, created_at FROM sales ORDER BY created_at, rowid`); err != nil {
		return nil, err
	}
	return rows, nil
}

// Lines returns the lines of one journalled sale.
func (j *Journal) Lines(ctx context.Context, saleID string) ([]LineRow, error) {
	var rows []LineRow
	err := j.db.SelectContext(ctx, &rows,
		`SELECT sale_id, medicine_id, name, quantity, unit_price, subtotal FROM sale_lines WHERE sale_id = ? ORDER BY id`, saleID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

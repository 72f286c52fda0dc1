// internal/receipt/postgres.go
package receipt

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore is the durable backing: correlations survive restarts, so
// the success page keeps working after a deploy.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens the connection and makes sure the receipts table
// exists. connStr is a standard postgres URL.
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres db: %v", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres db: %v", err)
	}

	schema := `
        CREATE TABLE IF NOT EXISTS receipts (
            order_id    TEXT PRIMARY KEY,
            receipt_url TEXT NOT NULL,
            updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
        )`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to ensure receipts table: %v", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Set upserts the correlation. The ON CONFLICT arm is what gives us the
// last-write-wins semantics for duplicate charge events.
func (s *PostgresStore) Set(ctx context.Context, orderID, receiptURL string) error {
	query := `
        INSERT INTO receipts (order_id, receipt_url)
        VALUES ($1, $2)
        ON CONFLICT (order_id)
        DO UPDATE SET receipt_url = EXCLUDED.receipt_url, updated_at = now()`

	if _, err := s.db.ExecContext(ctx, query, orderID, receiptURL); err != nil {
		return fmt.Errorf("failed to upsert receipt: %v", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, orderID string) (string, bool, error) {
	var receiptURL string
	query := `SELECT receipt_url FROM receipts WHERE order_id = $1`
	err := s.db.QueryRowContext(ctx, query, orderID).Scan(&receiptURL)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return receiptURL, true, nil
}

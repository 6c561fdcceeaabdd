package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type SQLiteProductStore struct {
	db *sql.DB
}

func NewSQLiteProductStore(db *sql.DB) *SQLiteProductStore {
	return &SQLiteProductStore{db: db}
}

var _ ProductStore = &SQLiteProductStore{}

func (s *SQLiteProductStore) Init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS khoj_products (
			id TEXT PRIMARY KEY,
			category TEXT,
			sort_name TEXT,
			p BLOB
		);
		CREATE INDEX IF NOT EXISTS idx_product_category ON khoj_products(category);
		CREATE INDEX IF NOT EXISTS idx_product_sort_name ON khoj_products(sort_name);
	`)
	if err != nil {
		return fmt.Errorf("failed to create khoj_products table: %w", err)
	}
	return nil
}

func (s *SQLiteProductStore) Add(ctx context.Context, ps []Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR REPLACE INTO khoj_products (id, category, sort_name, p) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range ps {
		entryJSON, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to json encode product: %w", err)
		}
		_, err = stmt.ExecContext(ctx, p.ID, strings.ToLower(p.Category), sortKey(p.Name), entryJSON)
		if err != nil {
			return fmt.Errorf("failed to insert product %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteProductStore) Get(ctx context.Context, id string) (Product, error) {
	var entryJSON []byte
	err := s.db.QueryRowContext(ctx, "SELECT p FROM khoj_products WHERE id = ?", id).Scan(&entryJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, err
	}
	var p Product
	if err := json.Unmarshal(entryJSON, &p); err != nil {
		return Product{}, fmt.Errorf("failed to decode product %s: %w", id, err)
	}
	return p, nil
}

func (s *SQLiteProductStore) List(ctx context.Context, category string) ([]Product, error) {
	query := "SELECT p FROM khoj_products ORDER BY sort_name, id"
	var args []any
	if category != "" {
		query = "SELECT p FROM khoj_products WHERE category = ? ORDER BY sort_name, id"
		args = append(args, strings.ToLower(category))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite list failed: %w", err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var entryJSON []byte
		if err := rows.Scan(&entryJSON); err != nil {
			return nil, err
		}
		var p Product
		if err := json.Unmarshal(entryJSON, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *SQLiteProductStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM khoj_products WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

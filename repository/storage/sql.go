package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

// NewSQLStorage keeps keys in the kv_store table:
//
//	CREATE TABLE kv_store (
//	  k VARCHAR(191) PRIMARY KEY,
//	  v LONGTEXT NOT NULL,
//	  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
//	);
func NewSQLStorage(conn *sqlx.DB) Storage {
	return &SQL{conn: conn}
}

const (
	getValueQuery    = "SELECT v FROM kv_store WHERE k = ?"
	upsertValueQuery = "INSERT INTO kv_store (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)"
	deleteValueQuery = "DELETE FROM kv_store WHERE k = ?"
)

func (s *SQL) Get(ctx context.Context, key string) (string, error) {
	var val string
	if err := s.conn.GetContext(ctx, &val, getValueQuery, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return val, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	_, err := s.conn.ExecContext(ctx, upsertValueQuery, key, value)
	return err
}

func (s *SQL) Remove(ctx context.Context, key string) error {
	_, err := s.conn.ExecContext(ctx, deleteValueQuery, key)
	return err
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"green-wheels/internal/shared/config"
)

// PostgresPersistence keeps each table as one jsonb row, for deployments
// where a shared database is preferred over a local file.
type PostgresPersistence struct {
	pool *pgxpool.Pool
}

func ConnectPostgres(ctx context.Context, cfg *config.StorageConfig) (*PostgresPersistence, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS row_sets (
			name TEXT PRIMARY KEY,
			data JSONB NOT NULL
		)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to prepare row_sets table: %w", err)
	}

	return &PostgresPersistence{pool: pool}, nil
}

func (p *PostgresPersistence) Load() (map[string]json.RawMessage, error) {
	rows, err := p.pool.Query(context.Background(), `SELECT name, data FROM row_sets`)
	if err != nil {
		return nil, fmt.Errorf("failed to load row sets: %w", err)
	}
	defer rows.Close()

	tables := make(map[string]json.RawMessage)
	for rows.Next() {
		var name string
		var data []byte
		if err := rows.Scan(&name, &data); err != nil {
			return nil, err
		}
		tables[name] = json.RawMessage(data)
	}
	return tables, rows.Err()
}

func (p *PostgresPersistence) Save(tables map[string]json.RawMessage) error {
	ctx := context.Background()

	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for name, data := range tables {
		_, err := tx.Exec(ctx, `
			INSERT INTO row_sets (name, data) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data`,
			name, []byte(data))
		if err != nil {
			return fmt.Errorf("failed to save row set %s: %w", name, err)
		}
	}
	return tx.Commit(ctx)
}

func (p *PostgresPersistence) Close() {
	p.pool.Close()
}

// Ping reports connectivity for the health endpoint.
func (p *PostgresPersistence) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

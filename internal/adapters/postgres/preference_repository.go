package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PreferenceRepository struct {
	pool *pgxpool.Pool
}

func (r *PreferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	const q = `select value from preferences where key = $1;`

	var value string
	if err := r.pool.QueryRow(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to select preference %q: %w", key, err)
	}
	return value, true, nil
}

func (r *PreferenceRepository) Set(ctx context.Context, key string, value string) error {
	const q = `
		insert into preferences (key, value, updated_at) values ($1, $2, now())
		on conflict (key) do update
		  set value = excluded.value, updated_at = now();
	`

	if _, err := r.pool.Exec(ctx, q, key, value); err != nil {
		return fmt.Errorf("failed to upsert preference %q: %w", key, err)
	}
	return nil
}

func NewPreferenceRepository(pool *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{pool: pool}
}

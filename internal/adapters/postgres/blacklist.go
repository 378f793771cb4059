package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"phishguard/internal/domain"
)

// BlacklistRepository

func (db *DB) Insert(ctx context.Context, e domain.BlacklistEntry) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `
		INSERT INTO blacklist (domain, reason, added_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (domain) DO NOTHING
	`, e.Domain, e.Reason, e.AddedDate)
	if err != nil {
		return false, fmt.Errorf("insert blacklist entry: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (db *DB) List(ctx context.Context) ([]domain.BlacklistEntry, error) {
	rows, err := db.Pool.Query(ctx, `SELECT domain, reason, added_at FROM blacklist ORDER BY added_at, domain`)
	if err != nil {
		return nil, fmt.Errorf("query blacklist: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BlacklistEntry, error) {
		var e domain.BlacklistEntry
		err := row.Scan(&e.Domain, &e.Reason, &e.AddedDate)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan blacklist: %w", err)
	}
	return out, nil
}

package postgres

import (
	"context"
	"fmt"

	"collectionhub/internal/domain/energetic"
	"collectionhub/internal/domain/item"

	"golang.org/x/exp/slog"
)

type EnergeticRepository struct {
	pool DB
	log  *slog.Logger
}

func NewEnergeticRepository(pool DB, log *slog.Logger) *EnergeticRepository {
	return &EnergeticRepository{
		pool: pool,
		log:  log.With("component", "energetic_repository"),
	}
}

func (r *EnergeticRepository) List(ctx context.Context, typ string) ([]energetic.Energetic, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, description, image, collect, type FROM energetics
		 WHERE ($1::text = '' OR type = $1)
		 ORDER BY type, description`,
		typ)
	if err != nil {
		r.log.Error("failed to load energetics", "error", err)
		return nil, fmt.Errorf("list energetics: %w", err)
	}
	defer rows.Close()

	out := []energetic.Energetic{}
	for rows.Next() {
		var e energetic.Energetic
		var collect string
		if err := rows.Scan(&e.ID, &e.Description, &e.Image, &collect, &e.Type); err != nil {
			return nil, fmt.Errorf("scan energetic: %w", err)
		}
		e.Collect = item.CollectStatus(collect)
		out = append(out, e)
	}
	return out, rows.Err()
}

const insertEnergetic = `INSERT INTO energetics (id, description, image, collect, type)
	VALUES ($1, $2, $3, $4, $5)`

func (r *EnergeticRepository) Create(ctx context.Context, e energetic.Energetic) error {
	_, err := r.pool.Exec(ctx, insertEnergetic,
		e.ID, e.Description, e.Image, string(e.Collect), e.Type)
	if err != nil {
		if isUniqueViolation(err) {
			return energetic.ErrAlreadyExists
		}
		r.log.Error("failed to add energetic", "error", err)
		return fmt.Errorf("insert energetic: %w", err)
	}
	return nil
}

// CreateBatch вставляет каталог в одной транзакции. Конфликт по
// (type, description) пропускается, так что повторный сид идемпотентен.
func (r *EnergeticRepository) CreateBatch(ctx context.Context, list []energetic.Energetic) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	inserted := 0
	for _, e := range list {
		tag, err := tx.Exec(ctx, insertEnergetic+` ON CONFLICT (type, description) DO NOTHING`,
			e.ID, e.Description, e.Image, string(e.Collect), e.Type)
		if err != nil {
			return 0, fmt.Errorf("insert energetic %q: %w", e.Description, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}

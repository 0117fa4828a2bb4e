package postgres

import (
	"context"
	"errors"
	"fmt"

	"collectionhub/internal/domain/collection"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"
)

type CollectionRepository struct {
	pool DB
	log  *slog.Logger
}

func NewCollectionRepository(pool DB, log *slog.Logger) *CollectionRepository {
	return &CollectionRepository{
		pool: pool,
		log:  log.With("component", "collection_repository"),
	}
}

const collectionColumns = `id, user_id, name, description, created_at`

func scanCollection(row pgx.Row) (collection.Collection, error) {
	var c collection.Collection
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.CreatedAt)
	return c, err
}

func (r *CollectionRepository) List(ctx context.Context, userID uuid.UUID) ([]collection.Collection, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+collectionColumns+` FROM collections
		 WHERE user_id = $1
		 ORDER BY created_at ASC, id ASC`,
		userID)
	if err != nil {
		r.log.Error("failed to list collections", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	out := []collection.Collection{}
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CollectionRepository) Get(ctx context.Context, userID, id uuid.UUID) (collection.Collection, error) {
	c, err := scanCollection(r.pool.QueryRow(ctx,
		`SELECT `+collectionColumns+` FROM collections WHERE id = $1 AND user_id = $2`,
		id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return collection.Collection{}, collection.ErrNotFound
		}
		return collection.Collection{}, fmt.Errorf("get collection: %w", err)
	}
	return c, nil
}

func (r *CollectionRepository) Create(ctx context.Context, userID uuid.UUID, in collection.CreateInput) (collection.Collection, error) {
	c, err := scanCollection(r.pool.QueryRow(ctx,
		`INSERT INTO collections (user_id, name, description) VALUES ($1, $2, $3)
		 RETURNING `+collectionColumns,
		userID, in.Name, in.Description))
	if err != nil {
		r.log.Error("failed to create collection", "user_id", userID, "error", err)
		return collection.Collection{}, fmt.Errorf("create collection: %w", err)
	}
	return c, nil
}

// Update - проверка владельца и изменение в одном запросе.
func (r *CollectionRepository) Update(ctx context.Context, userID, id uuid.UUID, in collection.UpdateInput) (collection.Collection, error) {
	var desc string
	if in.Description != nil {
		desc = *in.Description
	}

	c, err := scanCollection(r.pool.QueryRow(ctx,
		`UPDATE collections SET
		     name = COALESCE($3, name),
		     description = CASE WHEN $4::boolean THEN NULLIF($5, '') ELSE description END
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+collectionColumns,
		id, userID, in.Name, in.Description != nil, desc))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return collection.Collection{}, collection.ErrNotFound
		}
		r.log.Error("failed to update collection", "collection_id", id, "error", err)
		return collection.Collection{}, fmt.Errorf("update collection: %w", err)
	}
	return c, nil
}

func (r *CollectionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM collections WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		r.log.Error("failed to delete collection", "collection_id", id, "error", err)
		return fmt.Errorf("delete collection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return collection.ErrNotFound
	}
	return nil
}

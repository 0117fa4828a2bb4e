package postgres

import (
	"context"
	"errors"
	"fmt"

	"collectionhub/internal/domain/item"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"
)

type ItemRepository struct {
	pool DB
	log  *slog.Logger
}

func NewItemRepository(pool DB, log *slog.Logger) *ItemRepository {
	return &ItemRepository{
		pool: pool,
		log:  log.With("component", "item_repository"),
	}
}

const itemColumns = `i.id, i.collection_id, i.name, i.description, i.image, i.type, i.collect_status, i.created_at`

func scanItem(row pgx.Row) (item.Item, error) {
	var it item.Item
	var status string
	err := row.Scan(&it.ID, &it.CollectionID, &it.Name, &it.Description, &it.Image, &it.Type, &status, &it.CreatedAt)
	it.CollectStatus = item.CollectStatus(status)
	return it, err
}

func (r *ItemRepository) List(ctx context.Context, userID uuid.UUID, f item.Filter) ([]item.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+itemColumns+`
		 FROM items i
		 JOIN collections c ON c.id = i.collection_id
		 WHERE c.user_id = $1
		   AND ($2::text = '' OR i.type = $2)
		   AND ($3::uuid IS NULL OR i.collection_id = $3)
		 ORDER BY i.created_at ASC, i.id ASC`,
		userID, f.Type, f.CollectionID)
	if err != nil {
		r.log.Error("failed to list items", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	out := []item.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Create вставляет предмет только в коллекцию пользователя: INSERT ... SELECT
// не вернет строк, если коллекция чужая или не существует.
func (r *ItemRepository) Create(ctx context.Context, userID uuid.UUID, in item.CreateInput) (item.Item, error) {
	status := item.StatusUnknown
	if in.CollectStatus != nil {
		status = *in.CollectStatus
	}

	it, err := scanItem(r.pool.QueryRow(ctx,
		`INSERT INTO items (collection_id, name, description, image, type, collect_status)
		 SELECT c.id, $3, $4, $5, $6, $7
		 FROM collections c
		 WHERE c.id = $1 AND c.user_id = $2
		 RETURNING id, collection_id, name, description, image, type, collect_status, created_at`,
		in.CollectionID, userID, in.Name, in.Description, in.Image, in.Type, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item.Item{}, item.ErrForbidden
		}
		r.log.Error("failed to create item", "collection_id", in.CollectionID, "error", err)
		return item.Item{}, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

func (r *ItemRepository) Update(ctx context.Context, userID, id uuid.UUID, in item.UpdateInput) (item.Item, error) {
	var image, typ string
	if in.Image != nil {
		image = *in.Image
	}
	if in.Type != nil {
		typ = *in.Type
	}
	var status *string
	if in.CollectStatus != nil {
		s := string(*in.CollectStatus)
		status = &s
	}

	it, err := scanItem(r.pool.QueryRow(ctx,
		`UPDATE items i SET
		     name = COALESCE($3, i.name),
		     description = COALESCE($4, i.description),
		     image = CASE WHEN $5::boolean THEN NULLIF($6, '') ELSE i.image END,
		     type = CASE WHEN $7::boolean THEN NULLIF($8, '') ELSE i.type END,
		     collect_status = COALESCE($9, i.collect_status)
		 FROM collections c
		 WHERE i.id = $1 AND i.collection_id = c.id AND c.user_id = $2
		 RETURNING `+itemColumns,
		id, userID, in.Name, in.Description, in.Image != nil, image, in.Type != nil, typ, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item.Item{}, item.ErrNotFound
		}
		r.log.Error("failed to update item", "item_id", id, "error", err)
		return item.Item{}, fmt.Errorf("update item: %w", err)
	}
	return it, nil
}

// Toggle атомарно переключает статус collected <-> unknown.
func (r *ItemRepository) Toggle(ctx context.Context, userID, id uuid.UUID) (item.Item, error) {
	it, err := scanItem(r.pool.QueryRow(ctx,
		`UPDATE items i SET
		     collect_status = CASE WHEN i.collect_status = 'collected' THEN 'unknown' ELSE 'collected' END
		 FROM collections c
		 WHERE i.id = $1 AND i.collection_id = c.id AND c.user_id = $2
		 RETURNING `+itemColumns,
		id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item.Item{}, item.ErrNotFound
		}
		return item.Item{}, fmt.Errorf("toggle item: %w", err)
	}
	return it, nil
}

func (r *ItemRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM items i
		 USING collections c
		 WHERE i.id = $1 AND i.collection_id = c.id AND c.user_id = $2`,
		id, userID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return item.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) UniqueTypes(ctx context.Context, userID uuid.UUID, collectionID *uuid.UUID) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT i.type
		 FROM items i
		 JOIN collections c ON c.id = i.collection_id
		 WHERE c.user_id = $1
		   AND i.type IS NOT NULL AND i.type <> ''
		   AND ($2::uuid IS NULL OR i.collection_id = $2)
		 ORDER BY i.type`,
		userID, collectionID)
	if err != nil {
		return nil, fmt.Errorf("unique types: %w", err)
	}

	types, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan types: %w", err)
	}
	return types, nil
}

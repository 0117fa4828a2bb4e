package postgres

import (
	"context"
	"testing"
	"time"

	"collectionhub/internal/domain/errs"
	"collectionhub/internal/domain/item"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

var itemCols = []string{"id", "collection_id", "name", "description", "image", "type", "collect_status", "created_at"}

const ownedByUser = "FROM collections c WHERE i.id = $1 AND i.collection_id = c.id AND c.user_id = $2"

func itemRow(id, collectionID uuid.UUID, status string) *pgxmock.Rows {
	typ := "Original"
	return pgxmock.NewRows(itemCols).
		AddRow(id, collectionID, "Can", "Tall can", (*string)(nil), &typ, status, time.Now())
}

func TestItemRepository_Create(t *testing.T) {
	userID, collectionID, id := uuid.New(), uuid.New(), uuid.New()
	typ := "Original"
	in := item.CreateInput{CollectionID: collectionID, Name: "Can", Description: "Tall can", Type: &typ}

	t.Run("into own collection", func(t *testing.T) {
		mock := newMockDB(t)
		repo := NewItemRepository(mock, slog.Default())

		mock.ExpectQuery(sql("INSERT INTO items (collection_id, name, description, image, type, collect_status) SELECT c.id")).
			WithArgs(collectionID, userID, "Can", "Tall can", (*string)(nil), &typ, "unknown").
			WillReturnRows(itemRow(id, collectionID, "unknown"))

		it, err := repo.Create(context.Background(), userID, in)
		require.NoError(t, err)
		assert.Equal(t, id, it.ID)
		assert.Equal(t, item.StatusUnknown, it.CollectStatus)
		assert.Nil(t, it.Image)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("into foreign collection", func(t *testing.T) {
		mock := newMockDB(t)
		repo := NewItemRepository(mock, slog.Default())

		mock.ExpectQuery(sql("FROM collections c WHERE c.id = $1 AND c.user_id = $2")).
			WithArgs(collectionID, userID, "Can", "Tall can", (*string)(nil), &typ, "unknown").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.Create(context.Background(), userID, in)
		assert.Equal(t, item.ErrForbidden, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit status", func(t *testing.T) {
		mock := newMockDB(t)
		repo := NewItemRepository(mock, slog.Default())

		status := item.StatusWillNotCollect
		withStatus := in
		withStatus.CollectStatus = &status

		mock.ExpectQuery(sql("INSERT INTO items")).
			WithArgs(collectionID, userID, "Can", "Tall can", (*string)(nil), &typ, "will-not-collect").
			WillReturnRows(itemRow(id, collectionID, "will-not-collect"))

		it, err := repo.Create(context.Background(), userID, withStatus)
		require.NoError(t, err)
		assert.Equal(t, item.StatusWillNotCollect, it.CollectStatus)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestItemRepository_Update(t *testing.T) {
	userID, collectionID, id := uuid.New(), uuid.New(), uuid.New()
	name := "Renamed"
	status := item.StatusCollected
	collected := "collected"

	t.Run("scoped by owner", func(t *testing.T) {
		mock := newMockDB(t)
		repo := NewItemRepository(mock, slog.Default())

		mock.ExpectQuery(sql("UPDATE items i SET")+".*"+sql(ownedByUser)).
			WithArgs(id, userID, &name, (*string)(nil), false, "", false, "", &collected).
			WillReturnRows(itemRow(id, collectionID, "collected"))

		it, err := repo.Update(context.Background(), userID, id, item.UpdateInput{Name: &name, CollectStatus: &status})
		require.NoError(t, err)
		assert.Equal(t, item.StatusCollected, it.CollectStatus)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not owned", func(t *testing.T) {
		mock := newMockDB(t)
		repo := NewItemRepository(mock, slog.Default())

		mock.ExpectQuery(sql(ownedByUser)).WillReturnError(pgx.ErrNoRows)

		_, err := repo.Update(context.Background(), userID, id, item.UpdateInput{Name: &name})
		assert.Equal(t, item.ErrNotFound, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestItemRepository_Toggle(t *testing.T) {
	userID, collectionID, id := uuid.New(), uuid.New(), uuid.New()
	toggle := "collect_status = CASE WHEN i.collect_status = 'collected' THEN 'unknown' ELSE 'collected' END"

	t.Run("flips in one statement", func(t *testing.T) {
		mock := newMockDB(t)
		repo := NewItemRepository(mock, slog.Default())

		mock.ExpectQuery(sql(toggle)+".*"+sql(ownedByUser)).
			WithArgs(id, userID).
			WillReturnRows(itemRow(id, collectionID, "collected"))

		it, err := repo.Toggle(context.Background(), userID, id)
		require.NoError(t, err)
		assert.Equal(t, item.StatusCollected, it.CollectStatus)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not owned", func(t *testing.T) {
		mock := newMockDB(t)
		repo := NewItemRepository(mock, slog.Default())

		mock.ExpectQuery(sql(toggle)).WithArgs(id, userID).WillReturnError(pgx.ErrNoRows)

		_, err := repo.Toggle(context.Background(), userID, id)
		assert.Equal(t, item.ErrNotFound, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestItemRepository_Delete(t *testing.T) {
	userID, id := uuid.New(), uuid.New()
	q := sql("DELETE FROM items i USING collections c WHERE i.id = $1 AND i.collection_id = c.id AND c.user_id = $2")

	t.Run("owner deletes", func(t *testing.T) {
		mock := newMockDB(t)
		mock.ExpectExec(q).WithArgs(id, userID).WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := NewItemRepository(mock, slog.Default()).Delete(context.Background(), userID, id)
		assert.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not owned", func(t *testing.T) {
		mock := newMockDB(t)
		mock.ExpectExec(q).WithArgs(id, userID).WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := NewItemRepository(mock, slog.Default()).Delete(context.Background(), userID, id)
		assert.Equal(t, item.ErrNotFound, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestItemRepository_UniqueTypes(t *testing.T) {
	mock := newMockDB(t)
	userID := uuid.New()

	mock.ExpectQuery(sql("SELECT DISTINCT i.type")).
		WithArgs(userID, (*uuid.UUID)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"type"}).AddRow("Original").AddRow("Ultra"))

	types, err := NewItemRepository(mock, slog.Default()).UniqueTypes(context.Background(), userID, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Original", "Ultra"}, types)
	require.NoError(t, mock.ExpectationsWereMet())
}

package client

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"collectionhub/internal/domain/item"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNoSession - пользователь не входил или вышел
var ErrNoSession = errors.New("сессия не найдена, выполните hubctl login")

// LocalSession - сохраненная сессия CLI
type LocalSession struct {
	Token    string
	Username string
	SavedAt  time.Time
}

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	// Создаем таблицы
	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL,
			username TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS marks (
			energetic_id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`)

	return err
}

// SaveSession заменяет сохраненную сессию
func (s *SQLiteStorage) SaveSession(token, username string) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, token, username, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET token = excluded.token,
			username = excluded.username, saved_at = excluded.saved_at
	`, token, username, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Session() (LocalSession, error) {
	var ls LocalSession
	err := s.db.QueryRow(`SELECT token, username, saved_at FROM session WHERE id = 1`).
		Scan(&ls.Token, &ls.Username, &ls.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return LocalSession{}, ErrNoSession
	}
	if err != nil {
		return LocalSession{}, fmt.Errorf("ошибка чтения сессии: %w", err)
	}
	return ls, nil
}

func (s *SQLiteStorage) ClearSession() error {
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("ошибка удаления сессии: %w", err)
	}
	return nil
}

// SetMark сохраняет личную отметку для записи каталога
func (s *SQLiteStorage) SetMark(id uuid.UUID, status item.CollectStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO marks (energetic_id, status, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(energetic_id) DO UPDATE SET status = excluded.status,
			updated_at = excluded.updated_at
	`, id.String(), string(status), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("ошибка сохранения отметки: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Marks() (map[uuid.UUID]item.CollectStatus, error) {
	rows, err := s.db.Query(`SELECT energetic_id, status FROM marks`)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения отметок: %w", err)
	}
	defer rows.Close()

	marks := make(map[uuid.UUID]item.CollectStatus)
	for rows.Next() {
		var rawID, status string
		if err := rows.Scan(&rawID, &status); err != nil {
			return nil, fmt.Errorf("ошибка чтения отметки: %w", err)
		}
		id, err := uuid.Parse(rawID)
		if err != nil {
			continue
		}
		marks[id] = item.CollectStatus(status)
	}

	return marks, rows.Err()
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

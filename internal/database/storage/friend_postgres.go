package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/HabitApp/internal/domain"
	"github.com/jmoiron/sqlx"
)

// FriendStorage реализует интерфейс ports.FriendStorage поверх sqlx
type FriendStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewFriendStorage создает новый экземпляр FriendStorage
func NewFriendStorage(db *sqlx.DB, logger *slog.Logger) *FriendStorage {
	return &FriendStorage{db: db, logger: logger}
}

// AddEdge вставляет направленное ребро user_id -> friend_id.
// Уникальность ребер не проверяется: повторный вызов создает дубликат
// (поведение исходного приложения, см. DESIGN.md).
func (s *FriendStorage) AddEdge(ctx context.Context, userID, friendID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO friends (user_id, friend_id) VALUES ($1, $2)`, userID, friendID)
	if err != nil {
		return fmt.Errorf("insert friend edge: %w", err)
	}

	s.logger.Info("friend edge added", "user_id", userID, "friend_id", friendID)
	return nil
}

// RemoveEdges удаляет ВСЕ ребра с парой (user_id, friend_id) —
// удаление по совпадению, не по id. Возвращает число удаленных строк,
// чтобы usecase мог отличить "не было ребра" от успеха.
func (s *FriendStorage) RemoveEdges(ctx context.Context, userID, friendID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM friends WHERE user_id = $1 AND friend_id = $2`, userID, friendID)
	if err != nil {
		return 0, fmt.Errorf("delete friend edges: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}

// ListNeighbors возвращает уникальных друзей пользователя.
// DISTINCT схлопывает дубликаты ребер, имя подставляется из device_id,
// если отображаемое имя пустое.
func (s *FriendStorage) ListNeighbors(ctx context.Context, userID int64) ([]domain.FriendInfo, error) {
	friends := []domain.FriendInfo{}
	err := s.db.SelectContext(ctx, &friends, `
        SELECT DISTINCT u.id, COALESCE(NULLIF(u.name, ''), u.device_id) AS name
        FROM friends f
        JOIN users u ON u.id = f.friend_id
        WHERE f.user_id = $1
        ORDER BY u.id
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("select neighbors: %w", err)
	}
	return friends, nil
}

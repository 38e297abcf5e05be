package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/HabitApp/internal/domain"
	"github.com/jmoiron/sqlx"
)

// LeaderboardStorage реализует read-only выборки лидерборда.
// Собственных таблиц нет: только join по users, habits, friends и user_stats.
type LeaderboardStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewLeaderboardStorage создает новый экземпляр LeaderboardStorage
func NewLeaderboardStorage(db *sqlx.DB, logger *slog.Logger) *LeaderboardStorage {
	return &LeaderboardStorage{db: db, logger: logger}
}

// GlobalRows суммирует streak_count по привычкам каждого пользователя.
// Inner join: пользователи без привычек в выборку не попадают.
func (s *LeaderboardStorage) GlobalRows(ctx context.Context) ([]domain.GlobalLeaderboardEntry, error) {
	entries := []domain.GlobalLeaderboardEntry{}
	err := s.db.SelectContext(ctx, &entries, `
        SELECT COALESCE(NULLIF(u.name, ''), u.device_id) AS username,
               SUM(h.streak_count) AS total_streak
        FROM users u
        JOIN habits h ON u.id = h.user_id
        GROUP BY u.id
        ORDER BY total_streak DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("select global leaderboard: %w", err)
	}
	return entries, nil
}

// PersonalRows возвращает самого пользователя плюс его прямых друзей.
// LEFT JOIN с user_stats: друг без синхронизированной статистики
// получает нули, а не выпадает из выборки.
func (s *LeaderboardStorage) PersonalRows(ctx context.Context, userID int64) ([]domain.PersonalLeaderboardEntry, error) {
	entries := []domain.PersonalLeaderboardEntry{}
	err := s.db.SelectContext(ctx, &entries, `
        SELECT u.id,
               COALESCE(NULLIF(u.name, ''), u.device_id) AS name,
               COALESCE(s.longest_streak, 0) AS longest_streak,
               COALESCE(s.total_habits, 0) AS total_habits
        FROM users u
        LEFT JOIN user_stats s ON s.user_id = u.id
        WHERE u.id = $1
           OR u.id IN (SELECT friend_id FROM friends WHERE user_id = $1)
        ORDER BY longest_streak DESC
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("select personal leaderboard: %w", err)
	}
	return entries, nil
}

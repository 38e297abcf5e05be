package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/HabitApp/internal/domain"
	"github.com/jmoiron/sqlx"
)

// StatsStorage реализует интерфейс ports.StatsStorage поверх sqlx
type StatsStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStatsStorage создает новый экземпляр StatsStorage
func NewStatsStorage(db *sqlx.DB, logger *slog.Logger) *StatsStorage {
	return &StatsStorage{db: db, logger: logger}
}

// Upsert атомарно вставляет или обновляет строку статистики пользователя.
// Один оператор с ON CONFLICT: параллельные sync одного user_id
// не могут создать две строки (UNIQUE на user_stats.user_id).
func (s *StatsStorage) Upsert(ctx context.Context, userID int64, totalHabits, longestStreak int) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO user_stats (user_id, total_habits, longest_streak, last_sync)
        VALUES ($1, $2, $3, NOW())
        ON CONFLICT (user_id) DO UPDATE
        SET total_habits = EXCLUDED.total_habits,
            longest_streak = EXCLUDED.longest_streak,
            last_sync = NOW()
    `, userID, totalHabits, longestStreak)
	if err != nil {
		return fmt.Errorf("upsert user_stats: %w", err)
	}

	s.logger.Info("user stats synced",
		"user_id", userID,
		"total_habits", totalHabits,
		"longest_streak", longestStreak,
	)
	return nil
}

// GetByUserID возвращает статистику пользователя.
// Если строки нет, пробрасывает sql.ErrNoRows.
func (s *StatsStorage) GetByUserID(ctx context.Context, userID int64) (*domain.UserStats, error) {
	var stats domain.UserStats
	err := s.db.GetContext(ctx, &stats, `
        SELECT id, user_id, total_habits, longest_streak, last_sync
        FROM user_stats
        WHERE user_id = $1
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("select user_stats by user_id: %w", err)
	}
	return &stats, nil
}

// ListAll возвращает статистику всех пользователей (для глобального потребления).
func (s *StatsStorage) ListAll(ctx context.Context) ([]domain.UserStats, error) {
	stats := []domain.UserStats{}
	err := s.db.SelectContext(ctx, &stats, `
        SELECT id, user_id, total_habits, longest_streak, last_sync
        FROM user_stats
    `)
	if err != nil {
		return nil, fmt.Errorf("select all user_stats: %w", err)
	}
	return stats, nil
}

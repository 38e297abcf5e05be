package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/HabitApp/internal/domain"
	"gorm.io/gorm"
)

// HabitStorage реализует интерфейс ports.HabitStorage с использованием GORM
type HabitStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHabitStorage создает новый экземпляр HabitStorage
func NewHabitStorage(db *gorm.DB, logger *slog.Logger) *HabitStorage {
	return &HabitStorage{db: db, logger: logger}
}

// ListHabits возвращает привычки: все или только пользователя userID (если != 0).
// Порядок — по id (порядок вставки).
func (s *HabitStorage) ListHabits(ctx context.Context, userID int64) ([]domain.Habit, error) {
	habits := []domain.Habit{}

	q := s.db.WithContext(ctx).Order("id")
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}

	if result := q.Find(&habits); result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении списка привычек из БД: %w", result.Error)
	}
	return habits, nil
}

// CreateHabit сохраняет новую привычку; GORM заполняет присвоенный id.
func (s *HabitStorage) CreateHabit(ctx context.Context, habit *domain.Habit) error {
	if result := s.db.WithContext(ctx).Create(habit); result.Error != nil {
		return fmt.Errorf("ошибка при сохранении привычки в БД: %w", result.Error)
	}

	s.logger.Info("habit created",
		"habit_id", habit.ID,
		"user_id", habit.UserID,
		"habit_name", habit.HabitName,
	)
	return nil
}

// UpdateStreak полностью заменяет streak_count привычки.
// Отсутствие строки не считается ошибкой: обновление несуществующей
// привычки — тихий no-op (поведение исходного приложения).
func (s *HabitStorage) UpdateStreak(ctx context.Context, habitID int64, streakCount int) error {
	result := s.db.WithContext(ctx).
		Model(&domain.Habit{}).
		Where("id = ?", habitID).
		Update("streak_count", streakCount)
	if result.Error != nil {
		return fmt.Errorf("ошибка при обновлении привычки в БД: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		s.logger.Debug("streak update matched no rows", "habit_id", habitID)
	}
	return nil
}

// DeleteHabit удаляет привычку. Идемпотентно: отсутствие строки — успех.
func (s *HabitStorage) DeleteHabit(ctx context.Context, habitID int64) error {
	result := s.db.WithContext(ctx).Delete(&domain.Habit{}, habitID)
	if result.Error != nil {
		return fmt.Errorf("ошибка при удалении привычки из БД: %w", result.Error)
	}
	return nil
}

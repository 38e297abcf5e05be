package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/HabitApp/internal/apperr"
	"github.com/GoArmGo/HabitApp/internal/core/ports"
	"github.com/GoArmGo/HabitApp/internal/domain"
)

// HabitUseCase определяет интерфейс бизнес-логики работы с привычками
// (Habit Ledger).
type HabitUseCase interface {
	// List возвращает привычки: все (userID == 0) или одного пользователя.
	List(ctx context.Context, userID int64) ([]domain.Habit, error)

	// Create создает привычку со streak_count = 0 и возвращает полную запись.
	Create(ctx context.Context, userID int64, habitName string) (*domain.Habit, error)

	// SetStreak полностью заменяет streak_count. nil — поле отсутствует
	// в запросе (streak_count = 0 валиден, поэтому указатель).
	// Несуществующий habitID — тихий успех.
	SetStreak(ctx context.Context, habitID int64, streakCount *int) error

	// Delete удаляет привычку; идемпотентно.
	Delete(ctx context.Context, habitID int64) error
}

type habitUseCase struct {
	habitStorage ports.HabitStorage
	logger       *slog.Logger
}

// NewHabitUseCase создает новый экземпляр HabitUseCase
func NewHabitUseCase(habitStorage ports.HabitStorage, logger *slog.Logger) HabitUseCase {
	return &habitUseCase{habitStorage: habitStorage, logger: logger}
}

func (uc *habitUseCase) List(ctx context.Context, userID int64) ([]domain.Habit, error) {
	habits, err := uc.habitStorage.ListHabits(ctx, userID)
	if err != nil {
		return nil, internalErr(uc.logger, "list habits", err)
	}
	return habits, nil
}

func (uc *habitUseCase) Create(ctx context.Context, userID int64, habitName string) (*domain.Habit, error) {
	if userID == 0 || habitName == "" {
		return nil, apperr.New(apperr.KindBadRequest, "missing user_id or habit_name")
	}

	habit := &domain.Habit{
		UserID:      userID,
		HabitName:   habitName,
		StreakCount: 0,
	}
	if err := uc.habitStorage.CreateHabit(ctx, habit); err != nil {
		return nil, internalErr(uc.logger, "create habit", err)
	}
	return habit, nil
}

func (uc *habitUseCase) SetStreak(ctx context.Context, habitID int64, streakCount *int) error {
	if streakCount == nil {
		return apperr.New(apperr.KindBadRequest, "missing streak_count")
	}

	if err := uc.habitStorage.UpdateStreak(ctx, habitID, *streakCount); err != nil {
		return internalErr(uc.logger, "set streak", err)
	}
	return nil
}

func (uc *habitUseCase) Delete(ctx context.Context, habitID int64) error {
	if err := uc.habitStorage.DeleteHabit(ctx, habitID); err != nil {
		return internalErr(uc.logger, "delete habit", err)
	}
	return nil
}

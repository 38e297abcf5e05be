package usecase

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/GoArmGo/HabitApp/internal/apperr"
	"github.com/GoArmGo/HabitApp/internal/core/ports"
	"github.com/GoArmGo/HabitApp/internal/domain"
)

// SyncInput — поля запроса синхронизации. Указатели, потому что
// отсутствие поля и нулевое значение — разные вещи (ноль валиден).
type SyncInput struct {
	UserID        *int64 `json:"user_id"`
	TotalHabits   *int   `json:"total_habits"`
	LongestStreak *int   `json:"longest_streak"`
}

// StatsUseCase определяет интерфейс бизнес-логики сводной статистики
// (Stats Aggregator).
type StatsUseCase interface {
	// Sync выполняет upsert статистики пользователя: вставка при первом
	// sync, обновление на месте при последующих. Атомарность гарантирует
	// хранилище (один оператор, UNIQUE на user_id).
	Sync(ctx context.Context, in SyncInput) error

	// Get возвращает статистику пользователя или NotFound.
	Get(ctx context.Context, userID int64) (*domain.UserStats, error)

	// GetAll возвращает статистику всех пользователей (без сортировки).
	GetAll(ctx context.Context) ([]domain.UserStats, error)
}

type statsUseCase struct {
	statsStorage ports.StatsStorage
	logger       *slog.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(statsStorage ports.StatsStorage, logger *slog.Logger) StatsUseCase {
	return &statsUseCase{statsStorage: statsStorage, logger: logger}
}

func (uc *statsUseCase) Sync(ctx context.Context, in SyncInput) error {
	if in.UserID == nil || in.TotalHabits == nil || in.LongestStreak == nil {
		return apperr.New(apperr.KindBadRequest, "missing user_id, total_habits or longest_streak")
	}

	if err := uc.statsStorage.Upsert(ctx, *in.UserID, *in.TotalHabits, *in.LongestStreak); err != nil {
		return internalErr(uc.logger, "sync stats", err)
	}
	return nil
}

func (uc *statsUseCase) Get(ctx context.Context, userID int64) (*domain.UserStats, error) {
	stats, err := uc.statsStorage.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Wrap(apperr.KindNotFound, "stats not found", err)
		}
		return nil, internalErr(uc.logger, "get stats", err)
	}
	return stats, nil
}

func (uc *statsUseCase) GetAll(ctx context.Context) ([]domain.UserStats, error) {
	stats, err := uc.statsStorage.ListAll(ctx)
	if err != nil {
		return nil, internalErr(uc.logger, "get all stats", err)
	}
	return stats, nil
}

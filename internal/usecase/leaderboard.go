package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/HabitApp/internal/apperr"
	"github.com/GoArmGo/HabitApp/internal/core/ports"
	"github.com/GoArmGo/HabitApp/internal/domain"
)

// LeaderboardUseCase — производные ранжированные представления
// (Leaderboard View). Читает чужие таблицы, своих не имеет.
type LeaderboardUseCase interface {
	// Global — сумма стриков по всем привычкам на пользователя,
	// по убыванию. Пользователи без привычек не включаются.
	Global(ctx context.Context) ([]domain.GlobalLeaderboardEntry, error)

	// Personal — сам пользователь плюс его прямые друзья, по убыванию
	// longest_streak; друзья без статистики получают нули.
	Personal(ctx context.Context, userID int64) ([]domain.PersonalLeaderboardEntry, error)
}

type leaderboardUseCase struct {
	leaderboardStorage ports.LeaderboardStorage
	logger             *slog.Logger
}

// NewLeaderboardUseCase создает новый экземпляр LeaderboardUseCase
func NewLeaderboardUseCase(leaderboardStorage ports.LeaderboardStorage, logger *slog.Logger) LeaderboardUseCase {
	return &leaderboardUseCase{leaderboardStorage: leaderboardStorage, logger: logger}
}

func (uc *leaderboardUseCase) Global(ctx context.Context) ([]domain.GlobalLeaderboardEntry, error) {
	entries, err := uc.leaderboardStorage.GlobalRows(ctx)
	if err != nil {
		return nil, internalErr(uc.logger, "global leaderboard", err)
	}
	return entries, nil
}

func (uc *leaderboardUseCase) Personal(ctx context.Context, userID int64) ([]domain.PersonalLeaderboardEntry, error) {
	if userID == 0 {
		return nil, apperr.New(apperr.KindBadRequest, "missing user_id")
	}

	entries, err := uc.leaderboardStorage.PersonalRows(ctx, userID)
	if err != nil {
		return nil, internalErr(uc.logger, "personal leaderboard", err)
	}
	return entries, nil
}

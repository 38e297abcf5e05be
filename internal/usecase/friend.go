package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/HabitApp/internal/apperr"
	"github.com/GoArmGo/HabitApp/internal/core/ports"
	"github.com/GoArmGo/HabitApp/internal/domain"
)

// FriendUseCase определяет интерфейс бизнес-логики графа дружбы
// (Friendship Graph). Ребра направленные: add(1, 2) не создает add(2, 1).
type FriendUseCase interface {
	// Add создает ребро. Существование цели (friend_id) проверяется,
	// источника — нет; дубликаты и петли допускаются.
	Add(ctx context.Context, userID, friendID int64) error

	// Remove удаляет все ребра с точной парой (user_id, friend_id);
	// если ребер не было — NotFound.
	Remove(ctx context.Context, userID, friendID int64) error

	// Neighbors возвращает уникальных прямых друзей пользователя.
	Neighbors(ctx context.Context, userID int64) ([]domain.FriendInfo, error)
}

type friendUseCase struct {
	friendStorage ports.FriendStorage
	userStorage   ports.UserStorage
	logger        *slog.Logger
}

// NewFriendUseCase создает новый экземпляр FriendUseCase
func NewFriendUseCase(friendStorage ports.FriendStorage, userStorage ports.UserStorage, logger *slog.Logger) FriendUseCase {
	return &friendUseCase{
		friendStorage: friendStorage,
		userStorage:   userStorage,
		logger:        logger,
	}
}

func (uc *friendUseCase) Add(ctx context.Context, userID, friendID int64) error {
	if userID == 0 || friendID == 0 {
		return apperr.New(apperr.KindBadRequest, "missing user_id or friend_id")
	}

	// Единственное проверяемое предусловие: цель ребра должна существовать.
	exists, err := uc.userStorage.ExistsByID(ctx, friendID)
	if err != nil {
		return internalErr(uc.logger, "add friend: check target", err)
	}
	if !exists {
		return apperr.New(apperr.KindNotFound, "friend not found")
	}

	if err := uc.friendStorage.AddEdge(ctx, userID, friendID); err != nil {
		return internalErr(uc.logger, "add friend", err)
	}
	return nil
}

func (uc *friendUseCase) Remove(ctx context.Context, userID, friendID int64) error {
	if userID == 0 || friendID == 0 {
		return apperr.New(apperr.KindBadRequest, "missing user_id or friend_id")
	}

	affected, err := uc.friendStorage.RemoveEdges(ctx, userID, friendID)
	if err != nil {
		return internalErr(uc.logger, "remove friend", err)
	}
	if affected == 0 {
		return apperr.New(apperr.KindNotFound, "friendship not found")
	}

	uc.logger.Info("friend edges removed",
		"user_id", userID,
		"friend_id", friendID,
		"removed", affected,
	)
	return nil
}

func (uc *friendUseCase) Neighbors(ctx context.Context, userID int64) ([]domain.FriendInfo, error) {
	if userID == 0 {
		return nil, apperr.New(apperr.KindBadRequest, "missing user_id")
	}

	friends, err := uc.friendStorage.ListNeighbors(ctx, userID)
	if err != nil {
		return nil, internalErr(uc.logger, "list neighbors", err)
	}
	return friends, nil
}

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

// UserUseCase определяет интерфейс бизнес-логики работы с пользователями
// (Identity Resolver: логин по device_id и сопутствующие операции).
type UserUseCase interface {
	// Resolve возвращает id пользователя по device_id, создавая запись
	// при первом контакте. Имя (если передано) обновляется при каждом логине.
	Resolve(ctx context.Context, deviceID, name string) (int64, error)

	// LookupID — чистый поиск id по device_id без побочных эффектов.
	LookupID(ctx context.Context, deviceID string) (int64, error)

	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser явно создает пользователя; повторный device_id — Conflict.
	CreateUser(ctx context.Context, deviceID, name string) (*domain.User, error)
}

type userUseCase struct {
	userStorage ports.UserStorage
	logger      *slog.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase
func NewUserUseCase(userStorage ports.UserStorage, logger *slog.Logger) UserUseCase {
	return &userUseCase{userStorage: userStorage, logger: logger}
}

func (uc *userUseCase) Resolve(ctx context.Context, deviceID, name string) (int64, error) {
	if deviceID == "" {
		return 0, apperr.New(apperr.KindBadRequest, "missing device_id")
	}

	user, err := uc.userStorage.GetByDeviceID(ctx, deviceID)
	if err == nil {
		// Пользователь уже известен: при необходимости обновляем имя.
		if name != "" && name != user.Name {
			if err := uc.userStorage.UpdateName(ctx, user.ID, name); err != nil {
				return 0, internalErr(uc.logger, "resolve: update name", err)
			}
		}
		return user.ID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, internalErr(uc.logger, "resolve: get by device_id", err)
	}

	// Первый контакт с этим устройством — создаем пользователя.
	// Пустое имя допустимо: при чтении подставляется device_id.
	created, err := uc.userStorage.Create(ctx, deviceID, name)
	if err != nil {
		if isUniqueViolation(err) {
			// Два параллельных первых логина одного устройства.
			return 0, apperr.Wrap(apperr.KindConflict, "device_id already exists", err)
		}
		return 0, internalErr(uc.logger, "resolve: create user", err)
	}

	uc.logger.Info("new user resolved", "user_id", created.ID, "device_id", deviceID)
	return created.ID, nil
}

func (uc *userUseCase) LookupID(ctx context.Context, deviceID string) (int64, error) {
	if deviceID == "" {
		return 0, apperr.New(apperr.KindBadRequest, "missing device_id")
	}

	user, err := uc.userStorage.GetByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperr.Wrap(apperr.KindNotFound, "user not found", err)
		}
		return 0, internalErr(uc.logger, "lookup id", err)
	}
	return user.ID, nil
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := uc.userStorage.List(ctx)
	if err != nil {
		return nil, internalErr(uc.logger, "list users", err)
	}
	return users, nil
}

func (uc *userUseCase) CreateUser(ctx context.Context, deviceID, name string) (*domain.User, error) {
	if deviceID == "" {
		return nil, apperr.New(apperr.KindBadRequest, "missing device_id")
	}

	user, err := uc.userStorage.Create(ctx, deviceID, name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Wrap(apperr.KindConflict, "device_id already exists", err)
		}
		return nil, internalErr(uc.logger, "create user", err)
	}
	return user, nil
}

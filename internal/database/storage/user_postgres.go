package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/HabitApp/internal/domain"
	"github.com/jmoiron/sqlx"
)

// UserStorage реализует интерфейс ports.UserStorage поверх sqlx
type UserStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *sqlx.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// GetByDeviceID возвращает пользователя по device_id.
// Если записи нет, пробрасывает sql.ErrNoRows — классификацию делает usecase.
func (s *UserStorage) GetByDeviceID(ctx context.Context, deviceID string) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user, `SELECT id, device_id, name FROM users WHERE device_id = $1`, deviceID)
	if err != nil {
		return nil, fmt.Errorf("select user by device_id: %w", err)
	}
	return &user, nil
}

// Create создает пользователя. Нарушение уникальности device_id
// возвращается как ошибка драйвера (*pq.Error, код 23505).
func (s *UserStorage) Create(ctx context.Context, deviceID, name string) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user, `
        INSERT INTO users (device_id, name)
        VALUES ($1, $2)
        RETURNING id, device_id, name
    `, deviceID, name)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	s.logger.Info("user created", "user_id", user.ID, "device_id", user.DeviceID)
	return &user, nil
}

// UpdateName обновляет отображаемое имя пользователя.
func (s *UserStorage) UpdateName(ctx context.Context, id int64, name string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE users SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("update user name: %w", err)
	}
	return nil
}

// List возвращает всех пользователей.
func (s *UserStorage) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	err := s.db.SelectContext(ctx, &users, `SELECT id, device_id, name FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	return users, nil
}

// ExistsByID проверяет существование пользователя по числовому id.
func (s *UserStorage) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

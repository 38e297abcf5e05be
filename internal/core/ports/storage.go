package ports

import (
	"context"

	"github.com/GoArmGo/HabitApp/internal/domain"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// GetByDeviceID возвращает пользователя по device_id.
	// Если пользователя нет — sql.ErrNoRows (классифицирует usecase).
	GetByDeviceID(ctx context.Context, deviceID string) (*domain.User, error)

	// Create создает пользователя и возвращает запись с присвоенным id.
	Create(ctx context.Context, deviceID, name string) (*domain.User, error)

	// UpdateName обновляет отображаемое имя существующего пользователя.
	UpdateName(ctx context.Context, id int64, name string) error

	// List возвращает всех пользователей.
	List(ctx context.Context) ([]domain.User, error)

	// ExistsByID проверяет существование пользователя по числовому id.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// HabitStorage определяет методы для взаимодействия с хранилищем привычек
type HabitStorage interface {
	// ListHabits возвращает привычки: все или только пользователя userID (если != 0).
	ListHabits(ctx context.Context, userID int64) ([]domain.Habit, error)

	// CreateHabit сохраняет новую привычку (streak_count = 0) и возвращает
	// запись с присвоенным id.
	CreateHabit(ctx context.Context, habit *domain.Habit) error

	// UpdateStreak заменяет streak_count привычки. Отсутствие строки — не ошибка.
	UpdateStreak(ctx context.Context, habitID int64, streakCount int) error

	// DeleteHabit удаляет привычку. Отсутствие строки — не ошибка.
	DeleteHabit(ctx context.Context, habitID int64) error
}

// StatsStorage определяет методы для взаимодействия с хранилищем статистики
type StatsStorage interface {
	// Upsert атомарно вставляет или обновляет строку user_stats пользователя.
	// Гонка "проверил-вставил" закрыта UNIQUE(user_id) + ON CONFLICT на стороне бд.
	Upsert(ctx context.Context, userID int64, totalHabits, longestStreak int) error

	// GetByUserID возвращает статистику пользователя (sql.ErrNoRows если нет).
	GetByUserID(ctx context.Context, userID int64) (*domain.UserStats, error)

	// ListAll возвращает статистику всех пользователей.
	ListAll(ctx context.Context) ([]domain.UserStats, error)
}

// FriendStorage определяет методы для взаимодействия с графом дружбы
type FriendStorage interface {
	// AddEdge вставляет направленное ребро. Дубликаты не проверяются.
	AddEdge(ctx context.Context, userID, friendID int64) error

	// RemoveEdges удаляет все ребра (userID, friendID) и возвращает,
	// сколько строк было удалено.
	RemoveEdges(ctx context.Context, userID, friendID int64) (int64, error)

	// ListNeighbors возвращает уникальных друзей пользователя
	// с именем, подставленным из device_id при отсутствии.
	ListNeighbors(ctx context.Context, userID int64) ([]domain.FriendInfo, error)
}

// LeaderboardStorage определяет read-only выборки для лидерборда.
// Собственных таблиц у лидерборда нет.
type LeaderboardStorage interface {
	// GlobalRows — сумма стриков по привычкам на пользователя, по убыванию.
	GlobalRows(ctx context.Context) ([]domain.GlobalLeaderboardEntry, error)

	// PersonalRows — пользователь и его друзья со статистикой
	// (нули, если строки user_stats нет), по убыванию longest_streak.
	PersonalRows(ctx context.Context, userID int64) ([]domain.PersonalLeaderboardEntry, error)
}

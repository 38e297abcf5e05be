// internal/domain/habit.go
package domain

// Habit представляет привычку пользователя,
// соответствует таблице habits в бд.
// streak_count — текущая серия выполнений, клиент присылает полное значение
// (не инкремент).
type Habit struct {
	ID          int64  `json:"id" db:"id" gorm:"primaryKey"`
	UserID      int64  `json:"user_id" db:"user_id"`
	HabitName   string `json:"habit_name" db:"habit_name"`
	StreakCount int    `json:"streak_count" db:"streak_count"`
}

func (Habit) TableName() string {
	return "habits"
}

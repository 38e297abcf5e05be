// internal/domain/stats.go
package domain

import "time"

// UserStats — сводная статистика пользователя,
// соответствует таблице user_stats в бд.
// Ровно ноль или одна строка на user_id (UNIQUE-ограничение),
// значения total_habits и longest_streak присылает клиент.
type UserStats struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	TotalHabits   int       `json:"total_habits" db:"total_habits"`
	LongestStreak int       `json:"longest_streak" db:"longest_streak"`
	LastSync      time.Time `json:"last_sync" db:"last_sync"`
}

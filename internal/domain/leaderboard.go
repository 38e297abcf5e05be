// internal/domain/leaderboard.go
package domain

// GlobalLeaderboardEntry — строка глобального лидерборда:
// имя пользователя и сумма streak_count по всем его привычкам.
// Пользователи без привычек в глобальный лидерборд не попадают (inner join).
type GlobalLeaderboardEntry struct {
	Username    string `json:"username" db:"username"`
	TotalStreak int    `json:"total_streak" db:"total_streak"`
}

// PersonalLeaderboardEntry — строка персонального лидерборда:
// сам пользователь плюс его друзья, данные из user_stats.
// Друг без синхронизированной статистики получает нули, а не пропадает.
type PersonalLeaderboardEntry struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	LongestStreak int    `json:"longest_streak" db:"longest_streak"`
	TotalHabits   int    `json:"total_habits" db:"total_habits"`
}

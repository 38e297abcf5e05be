package payloads

import "time"

// StatsSyncedPayload представляет событие успешной синхронизации статистики,
// публикуемое в RabbitMQ. Воркер архивирует событие в объектное хранилище.
type StatsSyncedPayload struct {
	EventID       string    `json:"event_id"`
	UserID        int64     `json:"user_id"`
	TotalHabits   int       `json:"total_habits"`
	LongestStreak int       `json:"longest_streak"`
	SyncedAt      time.Time `json:"synced_at"`
}

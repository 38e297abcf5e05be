// internal/domain/user.go
package domain

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
// Идентификация происходит по device_id (идентификатор устройства часов),
// имя опционально и может быть изменено при повторном логине.
type User struct {
	ID       int64  `json:"id" db:"id"`
	DeviceID string `json:"device_id" db:"device_id"`
	Name     string `json:"name" db:"name"`
}

// Friend представляет направленное ребро дружбы user_id -> friend_id.
// Соответствует таблице 'friends' в базе данных.
type Friend struct {
	ID       int64 `json:"id" db:"id"`
	UserID   int64 `json:"user_id" db:"user_id"`
	FriendID int64 `json:"friend_id" db:"friend_id"`
}

// FriendInfo — то, что отдаем клиенту при запросе списка друзей:
// id друга и отображаемое имя (если имени нет — подставляем device_id).
type FriendInfo struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

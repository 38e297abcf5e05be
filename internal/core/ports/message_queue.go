package ports

import (
	"context"
	"io"

	"github.com/GoArmGo/HabitApp/internal/messaging/payloads"
)

// StatsSyncPublisher определяет методы для публикации событий синхронизации.
// Этот интерфейс будет использоваться обработчиком HTTP-запросов:
// после успешного sync публикуется событие, неудача публикации
// не влияет на результат самого sync.
type StatsSyncPublisher interface {
	PublishStatsSynced(ctx context.Context, payload payloads.StatsSyncedPayload) error
}

// StatsSyncConsumer определяет методы для потребления событий синхронизации,
// будет использоваться воркером для получения задач из очереди
type StatsSyncConsumer interface {
	// StartConsumingStatsSynced начинает прослушивание очереди,
	// принимает функцию-обработчик, которая будет вызываться для каждого события
	StartConsumingStatsSynced(ctx context.Context, handler func(context.Context, payloads.StatsSyncedPayload) error) error
}

// ObjectStorage определяет интерфейс файлового хранилища (S3 / MinIO)
// для архивации событий синхронизации.
type ObjectStorage interface {
	// UploadObject загружает объект и возвращает его URL.
	UploadObject(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)

	// DeleteObject удаляет объект по ключу.
	DeleteObject(ctx context.Context, key string) error
}

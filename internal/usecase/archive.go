package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/HabitApp/internal/core/ports"
	"github.com/GoArmGo/HabitApp/internal/messaging/payloads"
)

// SyncArchiveUseCase — обработка событий синхронизации воркером:
// каждое событие сохраняется как JSON-объект в объектное хранилище.
type SyncArchiveUseCase interface {
	Archive(ctx context.Context, payload payloads.StatsSyncedPayload) error
}

type syncArchiveUseCase struct {
	objectStorage ports.ObjectStorage
	logger        *slog.Logger
}

// NewSyncArchiveUseCase создает новый экземпляр SyncArchiveUseCase
func NewSyncArchiveUseCase(objectStorage ports.ObjectStorage, logger *slog.Logger) SyncArchiveUseCase {
	return &syncArchiveUseCase{objectStorage: objectStorage, logger: logger}
}

func (uc *syncArchiveUseCase) Archive(ctx context.Context, payload payloads.StatsSyncedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sync event: %w", err)
	}

	// Ключ: sync-events/<user_id>/<event_id>.json
	key := fmt.Sprintf("sync-events/%d/%s.json", payload.UserID, payload.EventID)

	url, err := uc.objectStorage.UploadObject(ctx, key, bytes.NewReader(body), "application/json")
	if err != nil {
		return fmt.Errorf("upload sync event %s: %w", payload.EventID, err)
	}

	uc.logger.Info("sync event archived",
		"event_id", payload.EventID,
		"user_id", payload.UserID,
		"location", url,
	)
	return nil
}

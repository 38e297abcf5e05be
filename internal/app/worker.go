package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/HabitApp/internal/core/ports"
	"github.com/GoArmGo/HabitApp/internal/messaging/payloads"
	"github.com/GoArmGo/HabitApp/internal/usecase"
)

// runWorker запускает потребителя RabbitMQ: каждое событие синхронизации
// архивируется в объектное хранилище. Блокируется до отмены контекста.
func runWorker(
	ctx context.Context,
	logger *slog.Logger,
	archiveUseCase usecase.SyncArchiveUseCase,
	syncConsumer ports.StatsSyncConsumer,
) error {
	logger.Info("worker started, waiting for sync events")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	messageHandler := func(ctx context.Context, payload payloads.StatsSyncedPayload) error {
		logger.Info("processing sync event",
			"event_id", payload.EventID,
			"user_id", payload.UserID,
		)

		if err := archiveUseCase.Archive(ctx, payload); err != nil {
			logger.Error("failed to archive sync event", "event_id", payload.EventID, "error", err)
			return err
		}
		return nil
	}

	if err := syncConsumer.StartConsumingStatsSynced(workerCtx, messageHandler); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	<-ctx.Done()
	logger.Info("shutdown signal received, stopping worker")

	cancelWorker()

	// Небольшая задержка, чтобы in-flight события успели подтвердиться
	time.Sleep(2 * time.Second)
	logger.Info("worker stopped")

	return nil
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/HabitApp/internal/config"
	"github.com/GoArmGo/HabitApp/internal/core/ports"
	"github.com/GoArmGo/HabitApp/internal/usecase"
	"github.com/jmoiron/sqlx"
)

// UseCases — набор бизнес-логики, собираемый DI-контейнером.
type UseCases struct {
	User        usecase.UserUseCase
	Habit       usecase.HabitUseCase
	Stats       usecase.StatsUseCase
	Friend      usecase.FriendUseCase
	Leaderboard usecase.LeaderboardUseCase
	SyncArchive usecase.SyncArchiveUseCase
}

type App struct {
	config        *config.Config
	logger        *slog.Logger
	db            *sqlx.DB
	useCases      UseCases
	syncPublisher ports.StatsSyncPublisher
	syncConsumer  ports.StatsSyncConsumer
}

func NewApp(cfg *config.Config,
	logger *slog.Logger,
	db *sqlx.DB,
	useCases UseCases,
	syncPublisher ports.StatsSyncPublisher,
	syncConsumer ports.StatsSyncConsumer) *App {
	return &App{
		config:        cfg,
		logger:        logger,
		db:            db,
		useCases:      useCases,
		syncPublisher: syncPublisher,
		syncConsumer:  syncConsumer,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает приложение в выбранном режиме и блокируется
// до сигнала завершения.
func (a *App) Run(ctx context.Context, mode *string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting", "mode", *mode)

	var err error
	switch *mode {
	case "server":
		err = runServer(ctx, a.config, a.logger, a.useCases, a.syncPublisher)

	case "worker":
		err = runWorker(ctx, a.logger, a.useCases.SyncArchive, a.syncConsumer)

	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", *mode)
	}

	if err != nil {
		return err
	}

	a.logger.Info("shutting down")

	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	a.logger.Info("stopped cleanly")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}

	// publisher и consumer может быть один и тот же клиент RabbitMQ,
	// Close у него идемпотентен в рамках процесса
	if closer, ok := a.syncPublisher.(interface{ Close() }); ok {
		closer.Close()
	}

	return nil
}

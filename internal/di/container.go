package di

import (
	"gorm.io/gorm"

	gormpostgres "gorm.io/driver/postgres"

	"github.com/GoArmGo/HabitApp/internal/adapter/storage/minio"
	"github.com/GoArmGo/HabitApp/internal/app"
	"github.com/GoArmGo/HabitApp/internal/config"
	"github.com/GoArmGo/HabitApp/internal/database/client"
	"github.com/GoArmGo/HabitApp/internal/database/storage"
	"github.com/GoArmGo/HabitApp/internal/logger"
	"github.com/GoArmGo/HabitApp/internal/rabbitmq"
	"github.com/GoArmGo/HabitApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (подключение + миграции)
	dbClient, err := client.NewClient(cfg, logger.ForComponent(slogger, "db"))
	if err != nil {
		return nil, err
	}

	// GORM поверх уже открытого соединения — для хранилища привычек
	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: dbClient.DB.DB}), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	storageLogger := logger.ForComponent(slogger, "storage")
	userStorage := storage.NewUserStorage(dbClient.DB, storageLogger)
	habitStorage := storage.NewHabitStorage(gormDB, storageLogger)
	statsStorage := storage.NewStatsStorage(dbClient.DB, storageLogger)
	friendStorage := storage.NewFriendStorage(dbClient.DB, storageLogger)
	leaderboardStorage := storage.NewLeaderboardStorage(dbClient.DB, storageLogger)

	// 4. Инициализация MinIO (архив событий синхронизации)
	objectStorage, err := minio.NewMinioClient(cfg, logger.ForComponent(slogger, "minio"))
	if err != nil {
		return nil, err
	}

	// 5. Инициализация RabbitMQ клиента (publisher и consumer)
	rabbitMQClient, err := rabbitmq.NewClient(cfg, logger.ForComponent(slogger, "rabbitmq"))
	if err != nil {
		return nil, err
	}

	// 6. Инициализация бизнес-логики (usecases)
	ucLogger := logger.ForComponent(slogger, "usecase")
	useCases := app.UseCases{
		User:        usecase.NewUserUseCase(userStorage, ucLogger),
		Habit:       usecase.NewHabitUseCase(habitStorage, ucLogger),
		Stats:       usecase.NewStatsUseCase(statsStorage, ucLogger),
		Friend:      usecase.NewFriendUseCase(friendStorage, userStorage, ucLogger),
		Leaderboard: usecase.NewLeaderboardUseCase(leaderboardStorage, ucLogger),
		SyncArchive: usecase.NewSyncArchiveUseCase(objectStorage, logger.ForComponent(slogger, "archive")),
	}

	// 7. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient.DB,
		useCases,
		rabbitMQClient,
		rabbitMQClient,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}

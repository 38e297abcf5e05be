package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/HabitApp/internal/config"
	"github.com/GoArmGo/HabitApp/internal/core/ports"
	"github.com/GoArmGo/HabitApp/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// runServer запускает HTTP сервер: тонкий слой маршрутизации
// поверх use case'ов. Блокируется до отмены контекста.
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	useCases UseCases,
	syncPublisher ports.StatsSyncPublisher,
) error {
	userHandler := handler.NewUserHandler(useCases.User, logger)
	habitHandler := handler.NewHabitHandler(useCases.Habit, logger)
	statsHandler := handler.NewStatsHandler(useCases.Stats, syncPublisher, logger)
	friendHandler := handler.NewFriendHandler(useCases.Friend, logger)
	leaderboardHandler := handler.NewLeaderboardHandler(useCases.Leaderboard, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Post("/login", userHandler.Login)
	r.Get("/users", userHandler.ListUsers)
	r.Post("/users", userHandler.CreateUser)
	r.Get("/users/id", userHandler.LookupID)

	r.Get("/habits", habitHandler.GetHabits)
	r.Post("/habits", habitHandler.CreateHabit)
	r.Put("/habits/{habitID}", habitHandler.UpdateHabit)
	r.Delete("/habits/{habitID}", habitHandler.DeleteHabit)

	r.Post("/stats", statsHandler.SyncStats)
	r.Get("/stats", statsHandler.GetStats)

	r.Post("/friends", friendHandler.AddFriend)
	r.Delete("/friends", friendHandler.RemoveFriend)
	r.Get("/friends", friendHandler.GetFriends)

	r.Get("/leaderboard", leaderboardHandler.GetGlobal)
	r.Get("/leaderboard/{userID}", leaderboardHandler.GetPersonal)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, stopping HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("HTTP server stopped")
	return nil
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/GoArmGo/HabitApp/internal/core/ports"
	"github.com/GoArmGo/HabitApp/internal/messaging/payloads"
	"github.com/GoArmGo/HabitApp/internal/usecase"
	"github.com/google/uuid"
)

// StatsHandler — обработчик HTTP-запросов для синхронизации статистики.
type StatsHandler struct {
	statsUseCase  usecase.StatsUseCase
	syncPublisher ports.StatsSyncPublisher
	logger        *slog.Logger
}

// NewStatsHandler создаёт новый экземпляр StatsHandler.
func NewStatsHandler(uc usecase.StatsUseCase, publisher ports.StatsSyncPublisher, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		statsUseCase:  uc,
		syncPublisher: publisher,
		logger:        logger,
	}
}

// SyncStats — upsert статистики пользователя. После успешного sync
// публикуется событие в очередь; сбой публикации не влияет на ответ.
func (h *StatsHandler) SyncStats(w http.ResponseWriter, r *http.Request) {
	var in usecase.SyncInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.statsUseCase.Sync(r.Context(), in); err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	event := payloads.StatsSyncedPayload{
		EventID:       uuid.NewString(),
		UserID:        *in.UserID,
		TotalHabits:   *in.TotalHabits,
		LongestStreak: *in.LongestStreak,
		SyncedAt:      time.Now().UTC(),
	}
	if err := h.syncPublisher.PublishStatsSynced(r.Context(), event); err != nil {
		// Событие — аудит-артефакт, сам sync уже зафиксирован в бд.
		h.logger.Warn("failed to publish sync event",
			"event_id", event.EventID,
			"user_id", event.UserID,
			"error", err,
		)
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Stats synced successfully"}, h.logger)
}

// GetStats — статистика одного пользователя (?user_id=) или всех.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		stats, err := h.statsUseCase.GetAll(r.Context())
		if err != nil {
			respondWithAppError(w, err, h.logger)
			return
		}
		respondWithJSON(w, http.StatusOK, stats, h.logger)
		return
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user_id", h.logger)
		return
	}

	stats, err := h.statsUseCase.Get(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, stats, h.logger)
}

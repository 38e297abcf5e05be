package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/HabitApp/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// LeaderboardHandler — обработчик HTTP-запросов лидерборда.
type LeaderboardHandler struct {
	leaderboardUseCase usecase.LeaderboardUseCase
	logger             *slog.Logger
}

// NewLeaderboardHandler создаёт новый экземпляр LeaderboardHandler.
func NewLeaderboardHandler(uc usecase.LeaderboardUseCase, logger *slog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardUseCase: uc, logger: logger}
}

// GetGlobal — глобальный лидерборд: сумма стриков на пользователя.
func (h *LeaderboardHandler) GetGlobal(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardUseCase.Global(r.Context())
	if err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, entries, h.logger)
}

// GetPersonal — пользователь и его друзья со статистикой.
func (h *LeaderboardHandler) GetPersonal(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user_id", h.logger)
		return
	}

	entries, err := h.leaderboardUseCase.Personal(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, entries, h.logger)
}

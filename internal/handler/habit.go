package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/HabitApp/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// HabitHandler — обработчик HTTP-запросов для работы с привычками.
type HabitHandler struct {
	habitUseCase usecase.HabitUseCase
	logger       *slog.Logger
}

// NewHabitHandler создаёт новый экземпляр HabitHandler.
func NewHabitHandler(uc usecase.HabitUseCase, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{habitUseCase: uc, logger: logger}
}

type createHabitRequest struct {
	UserID    int64  `json:"user_id"`
	HabitName string `json:"habit_name"`
}

type updateHabitRequest struct {
	// Указатель: streak_count = 0 — валидное значение, отсутствие поля — нет.
	StreakCount *int `json:"streak_count"`
}

// GetHabits — список привычек, опционально отфильтрованный по user_id.
func (h *HabitHandler) GetHabits(w http.ResponseWriter, r *http.Request) {
	var userID int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid user_id", h.logger)
			return
		}
		userID = parsed
	}

	habits, err := h.habitUseCase.List(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, habits, h.logger)
}

// CreateHabit — создает привычку со streak_count = 0,
// возвращает полную запись с присвоенным id.
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req createHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	habit, err := h.habitUseCase.Create(r.Context(), req.UserID, req.HabitName)
	if err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, habit, h.logger)
}

// UpdateHabit — полная замена streak_count привычки.
func (h *HabitHandler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	habitID, err := strconv.ParseInt(chi.URLParam(r, "habitID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid habit_id", h.logger)
		return
	}

	var req updateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.habitUseCase.SetStreak(r.Context(), habitID, req.StreakCount); err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Habit updated successfully"}, h.logger)
}

// DeleteHabit — удаление привычки, идемпотентно.
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	habitID, err := strconv.ParseInt(chi.URLParam(r, "habitID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid habit_id", h.logger)
		return
	}

	if err := h.habitUseCase.Delete(r.Context(), habitID); err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Habit deleted successfully"}, h.logger)
}

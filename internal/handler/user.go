package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/HabitApp/internal/usecase"
)

// UserHandler — обработчик HTTP-запросов для логина и пользователей.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(uc usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUseCase: uc, logger: logger}
}

type loginRequest struct {
	DeviceID string `json:"device_id"`
	Name     string `json:"name"`
}

// Login — логин по device_id: создает пользователя при первом контакте,
// обновляет имя при последующих.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	userID, err := h.userUseCase.Resolve(r.Context(), req.DeviceID, req.Name)
	if err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user_id": userID,
	}, h.logger)
}

// LookupID — чистый поиск user_id по device_id (?device_id=...).
func (h *UserHandler) LookupID(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")

	userID, err := h.userUseCase.LookupID(r.Context(), deviceID)
	if err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int64{"user_id": userID}, h.logger)
}

// ListUsers — возвращает всех пользователей.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUseCase.ListUsers(r.Context())
	if err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, users, h.logger)
}

// CreateUser — явное создание пользователя; повторный device_id — 409.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	user, err := h.userUseCase.CreateUser(r.Context(), req.DeviceID, req.Name)
	if err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, user, h.logger)
}

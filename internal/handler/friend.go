package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/HabitApp/internal/usecase"
)

// FriendHandler — обработчик HTTP-запросов для графа дружбы.
type FriendHandler struct {
	friendUseCase usecase.FriendUseCase
	logger        *slog.Logger
}

// NewFriendHandler создаёт новый экземпляр FriendHandler.
func NewFriendHandler(uc usecase.FriendUseCase, logger *slog.Logger) *FriendHandler {
	return &FriendHandler{friendUseCase: uc, logger: logger}
}

type friendRequest struct {
	UserID   int64 `json:"user_id"`
	FriendID int64 `json:"friend_id"`
}

// AddFriend — создает направленное ребро user_id -> friend_id.
func (h *FriendHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	var req friendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.friendUseCase.Add(r.Context(), req.UserID, req.FriendID); err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{"message": "Friend added"}, h.logger)
}

// RemoveFriend — удаляет ребро (все совпадающие дубликаты).
func (h *FriendHandler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	var req friendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.friendUseCase.Remove(r.Context(), req.UserID, req.FriendID); err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Friend removed"}, h.logger)
}

// GetFriends — уникальные прямые друзья пользователя (?user_id=).
func (h *FriendHandler) GetFriends(w http.ResponseWriter, r *http.Request) {
	var userID int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid user_id", h.logger)
			return
		}
		userID = parsed
	}

	friends, err := h.friendUseCase.Neighbors(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, friends, h.logger)
}

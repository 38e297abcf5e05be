package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GoArmGo/HabitApp/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func habitRequestWithID(method, target, body, habitID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("habitID", habitID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHabitReturnsFullRecord(t *testing.T) {
	h := NewHabitHandler(&fakeHabitUseCase{}, testLogger())

	body := `{"user_id": 1, "habit_name": "Read"}`
	req := httptest.NewRequest(http.MethodPost, "/habits", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateHabit(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var habit domain.Habit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &habit))
	assert.NotZero(t, habit.ID)
	assert.Equal(t, "Read", habit.HabitName)
	assert.Zero(t, habit.StreakCount)
}

func TestCreateHabitMissingFields(t *testing.T) {
	h := NewHabitHandler(&fakeHabitUseCase{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/habits", strings.NewReader(`{"user_id": 1}`))
	rec := httptest.NewRecorder()

	h.CreateHabit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHabitsFiltersByUser(t *testing.T) {
	uc := &fakeHabitUseCase{habits: []domain.Habit{
		{ID: 1, UserID: 1, HabitName: "Read"},
		{ID: 2, UserID: 2, HabitName: "Run"},
	}}
	h := NewHabitHandler(uc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/habits?user_id=2", nil)
	rec := httptest.NewRecorder()

	h.GetHabits(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var habits []domain.Habit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &habits))
	require.Len(t, habits, 1)
	assert.Equal(t, "Run", habits[0].HabitName)
}

func TestUpdateHabitAcceptsZeroStreak(t *testing.T) {
	uc := &fakeHabitUseCase{}
	h := NewHabitHandler(uc, testLogger())

	req := habitRequestWithID(http.MethodPut, "/habits/1", `{"streak_count": 0}`, "1")
	rec := httptest.NewRecorder()

	h.UpdateHabit(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastStreak)
	assert.Zero(t, *uc.lastStreak)
}

func TestUpdateHabitMissingStreak(t *testing.T) {
	h := NewHabitHandler(&fakeHabitUseCase{}, testLogger())

	req := habitRequestWithID(http.MethodPut, "/habits/1", `{}`, "1")
	rec := httptest.NewRecorder()

	h.UpdateHabit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateHabitInvalidID(t *testing.T) {
	h := NewHabitHandler(&fakeHabitUseCase{}, testLogger())

	req := habitRequestWithID(http.MethodPut, "/habits/abc", `{"streak_count": 3}`, "abc")
	rec := httptest.NewRecorder()

	h.UpdateHabit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid habit_id", resp["error"])
}

func TestDeleteHabit(t *testing.T) {
	h := NewHabitHandler(&fakeHabitUseCase{}, testLogger())

	req := habitRequestWithID(http.MethodDelete, "/habits/1", "", "1")
	rec := httptest.NewRecorder()

	h.DeleteHabit(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Habit deleted successfully", resp["message"])
}

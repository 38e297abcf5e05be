package handler

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/GoArmGo/HabitApp/internal/apperr"
	"github.com/GoArmGo/HabitApp/internal/domain"
	"github.com/GoArmGo/HabitApp/internal/messaging/payloads"
	"github.com/GoArmGo/HabitApp/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStatsUseCase запоминает последний Sync и отдает заранее заданные данные.
type fakeStatsUseCase struct {
	lastSync *usecase.SyncInput
	stats    map[int64]*domain.UserStats
}

func newFakeStatsUseCase() *fakeStatsUseCase {
	return &fakeStatsUseCase{stats: make(map[int64]*domain.UserStats)}
}

func (f *fakeStatsUseCase) Sync(_ context.Context, in usecase.SyncInput) error {
	if in.UserID == nil || in.TotalHabits == nil || in.LongestStreak == nil {
		return apperr.New(apperr.KindBadRequest, "missing user_id, total_habits or longest_streak")
	}
	f.lastSync = &in
	return nil
}

func (f *fakeStatsUseCase) Get(_ context.Context, userID int64) (*domain.UserStats, error) {
	stats, ok := f.stats[userID]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "stats not found")
	}
	return stats, nil
}

func (f *fakeStatsUseCase) GetAll(_ context.Context) ([]domain.UserStats, error) {
	all := []domain.UserStats{}
	for _, s := range f.stats {
		all = append(all, *s)
	}
	return all, nil
}

// fakePublisher собирает опубликованные события; failWith имитирует отказ брокера.
type fakePublisher struct {
	mu       sync.Mutex
	events   []payloads.StatsSyncedPayload
	failWith error
}

func (f *fakePublisher) PublishStatsSynced(_ context.Context, event payloads.StatsSyncedPayload) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

type fakeHabitUseCase struct {
	habits     []domain.Habit
	nextID     int64
	lastStreak *int
}

func (f *fakeHabitUseCase) List(_ context.Context, userID int64) ([]domain.Habit, error) {
	if userID == 0 {
		return f.habits, nil
	}
	out := []domain.Habit{}
	for _, h := range f.habits {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHabitUseCase) Create(_ context.Context, userID int64, habitName string) (*domain.Habit, error) {
	if userID == 0 || habitName == "" {
		return nil, apperr.New(apperr.KindBadRequest, "missing user_id or habit_name")
	}
	f.nextID++
	habit := domain.Habit{ID: f.nextID, UserID: userID, HabitName: habitName}
	f.habits = append(f.habits, habit)
	return &habit, nil
}

func (f *fakeHabitUseCase) SetStreak(_ context.Context, _ int64, streakCount *int) error {
	if streakCount == nil {
		return apperr.New(apperr.KindBadRequest, "missing streak_count")
	}
	f.lastStreak = streakCount
	return nil
}

func (f *fakeHabitUseCase) Delete(_ context.Context, _ int64) error {
	return nil
}

type fakeUserUseCase struct {
	byDevice map[string]int64
	users    []domain.User
}

func (f *fakeUserUseCase) Resolve(_ context.Context, deviceID, _ string) (int64, error) {
	if deviceID == "" {
		return 0, apperr.New(apperr.KindBadRequest, "missing device_id")
	}
	if id, ok := f.byDevice[deviceID]; ok {
		return id, nil
	}
	id := int64(len(f.byDevice) + 1)
	if f.byDevice == nil {
		f.byDevice = map[string]int64{}
	}
	f.byDevice[deviceID] = id
	return id, nil
}

func (f *fakeUserUseCase) LookupID(_ context.Context, deviceID string) (int64, error) {
	if deviceID == "" {
		return 0, apperr.New(apperr.KindBadRequest, "missing device_id")
	}
	id, ok := f.byDevice[deviceID]
	if !ok {
		return 0, apperr.New(apperr.KindNotFound, "user not found")
	}
	return id, nil
}

func (f *fakeUserUseCase) ListUsers(_ context.Context) ([]domain.User, error) {
	return f.users, nil
}

func (f *fakeUserUseCase) CreateUser(_ context.Context, deviceID, name string) (*domain.User, error) {
	if _, ok := f.byDevice[deviceID]; ok {
		return nil, apperr.New(apperr.KindConflict, "device_id already exists")
	}
	return &domain.User{ID: 1, DeviceID: deviceID, Name: name}, nil
}

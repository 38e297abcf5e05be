package usecase

import (
	"context"
	"database/sql"
	"sync"

	"github.com/GoArmGo/HabitApp/internal/domain"
)

// Потокобезопасные in-memory хранилища для тестов use case'ов.
// Повторяют семантику SQL-хранилищ: sql.ErrNoRows при отсутствии записи,
// дедупликация соседей, подстановка device_id вместо пустого имени.

type fakeUserStorage struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]domain.User
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{nextID: 1, users: make(map[int64]domain.User)}
}

func (f *fakeUserStorage) GetByDeviceID(_ context.Context, deviceID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.DeviceID == deviceID {
			found := u
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserStorage) Create(_ context.Context, deviceID, name string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := domain.User{ID: f.nextID, DeviceID: deviceID, Name: name}
	f.users[u.ID] = u
	f.nextID++
	return &u, nil
}

func (f *fakeUserStorage) UpdateName(_ context.Context, id int64, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if ok {
		u.Name = name
		f.users[id] = u
	}
	return nil
}

func (f *fakeUserStorage) List(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := []domain.User{}
	for id := int64(1); id < f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *fakeUserStorage) ExistsByID(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[id]
	return ok, nil
}

type fakeHabitStorage struct {
	mu     sync.Mutex
	nextID int64
	habits map[int64]domain.Habit
}

func newFakeHabitStorage() *fakeHabitStorage {
	return &fakeHabitStorage{nextID: 1, habits: make(map[int64]domain.Habit)}
}

func (f *fakeHabitStorage) ListHabits(_ context.Context, userID int64) ([]domain.Habit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	habits := []domain.Habit{}
	for id := int64(1); id < f.nextID; id++ {
		h, ok := f.habits[id]
		if !ok {
			continue
		}
		if userID == 0 || h.UserID == userID {
			habits = append(habits, h)
		}
	}
	return habits, nil
}

func (f *fakeHabitStorage) CreateHabit(_ context.Context, habit *domain.Habit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	habit.ID = f.nextID
	f.habits[habit.ID] = *habit
	f.nextID++
	return nil
}

func (f *fakeHabitStorage) UpdateStreak(_ context.Context, habitID int64, streakCount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Отсутствие строки — тихий no-op, как в SQL-хранилище
	h, ok := f.habits[habitID]
	if ok {
		h.StreakCount = streakCount
		f.habits[habitID] = h
	}
	return nil
}

func (f *fakeHabitStorage) DeleteHabit(_ context.Context, habitID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.habits, habitID)
	return nil
}

type fakeStatsStorage struct {
	mu     sync.Mutex
	nextID int64
	stats  map[int64]domain.UserStats // ключ — user_id: одна строка на пользователя
}

func newFakeStatsStorage() *fakeStatsStorage {
	return &fakeStatsStorage{nextID: 1, stats: make(map[int64]domain.UserStats)}
}

func (f *fakeStatsStorage) Upsert(_ context.Context, userID int64, totalHabits, longestStreak int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.stats[userID]
	if !ok {
		row = domain.UserStats{ID: f.nextID, UserID: userID}
		f.nextID++
	}
	row.TotalHabits = totalHabits
	row.LongestStreak = longestStreak
	f.stats[userID] = row
	return nil
}

func (f *fakeStatsStorage) GetByUserID(_ context.Context, userID int64) (*domain.UserStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.stats[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (f *fakeStatsStorage) ListAll(_ context.Context) ([]domain.UserStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := []domain.UserStats{}
	for _, row := range f.stats {
		all = append(all, row)
	}
	return all, nil
}

type fakeFriendStorage struct {
	mu    sync.Mutex
	users *fakeUserStorage
	edges []domain.Friend
}

func newFakeFriendStorage(users *fakeUserStorage) *fakeFriendStorage {
	return &fakeFriendStorage{users: users}
}

func (f *fakeFriendStorage) AddEdge(_ context.Context, userID, friendID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edges = append(f.edges, domain.Friend{ID: int64(len(f.edges) + 1), UserID: userID, FriendID: friendID})
	return nil
}

func (f *fakeFriendStorage) RemoveEdges(_ context.Context, userID, friendID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []domain.Friend
	var removed int64
	for _, e := range f.edges {
		if e.UserID == userID && e.FriendID == friendID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	f.edges = kept
	return removed, nil
}

func (f *fakeFriendStorage) ListNeighbors(_ context.Context, userID int64) ([]domain.FriendInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[int64]bool{}
	result := []domain.FriendInfo{}
	for _, e := range f.edges {
		if e.UserID != userID || seen[e.FriendID] {
			continue
		}
		seen[e.FriendID] = true
		u, ok := f.users.users[e.FriendID]
		if !ok {
			continue
		}
		name := u.Name
		if name == "" {
			name = u.DeviceID
		}
		result = append(result, domain.FriendInfo{ID: u.ID, Name: name})
	}
	return result, nil
}

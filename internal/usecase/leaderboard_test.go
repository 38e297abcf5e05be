package usecase

import (
	"context"
	"testing"

	"github.com/GoArmGo/HabitApp/internal/apperr"
	"github.com/GoArmGo/HabitApp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaderboardStorage struct {
	global   []domain.GlobalLeaderboardEntry
	personal []domain.PersonalLeaderboardEntry
}

func (f *fakeLeaderboardStorage) GlobalRows(context.Context) ([]domain.GlobalLeaderboardEntry, error) {
	return f.global, nil
}

func (f *fakeLeaderboardStorage) PersonalRows(context.Context, int64) ([]domain.PersonalLeaderboardEntry, error) {
	return f.personal, nil
}

func TestPersonalLeaderboardRequiresUserID(t *testing.T) {
	uc := NewLeaderboardUseCase(&fakeLeaderboardStorage{}, testLogger())

	_, err := uc.Personal(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestLeaderboardPassesRowsThrough(t *testing.T) {
	store := &fakeLeaderboardStorage{
		global: []domain.GlobalLeaderboardEntry{
			{Username: "alice", TotalStreak: 12},
			{Username: "bob", TotalStreak: 4},
		},
		personal: []domain.PersonalLeaderboardEntry{
			{ID: 1, Name: "alice", LongestStreak: 9, TotalHabits: 3},
			// Друг без строки user_stats приходит с нулями, не пропадает
			{ID: 2, Name: "dev-2", LongestStreak: 0, TotalHabits: 0},
		},
	}
	uc := NewLeaderboardUseCase(store, testLogger())
	ctx := context.Background()

	global, err := uc.Global(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.global, global)

	personal, err := uc.Personal(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, store.personal, personal)
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStatsUpsertIsSingleStatement(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewStatsStorage(db, discardLogger())

	// Один оператор с ON CONFLICT: никакого select-then-insert
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id) DO UPDATE")).
		WithArgs(int64(1), 3, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Upsert(context.Background(), 1, 3, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsGetByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewStatsStorage(db, discardLogger())

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "total_habits", "longest_streak", "last_sync"}).
		AddRow(int64(7), int64(1), 3, 5, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_stats")).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	stats, err := s.GetByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.UserID)
	assert.Equal(t, 3, stats.TotalHabits)
	assert.Equal(t, 5, stats.LongestStreak)
	assert.WithinDuration(t, now, stats.LastSync, time.Second)
}

func TestStatsGetByUserIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewStatsStorage(db, discardLogger())

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_stats")).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetByUserID(context.Background(), 42)
	// sql.ErrNoRows должен оставаться различимым после оборачивания
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

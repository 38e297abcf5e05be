package storage

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveEdgesReportsAffectedRows(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewFriendStorage(db, discardLogger())

	// удаление по совпадению пары снимает и дубликаты ребер
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM friends WHERE user_id = $1 AND friend_id = $2")).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	affected, err := s.RemoveEdges(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
}

func TestRemoveEdgesZeroWhenNoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewFriendStorage(db, discardLogger())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM friends")).
		WithArgs(int64(1), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := s.RemoveEdges(context.Background(), 1, 99)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestListNeighborsScansIDAndName(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewFriendStorage(db, discardLogger())

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(int64(2), "Bob").
		AddRow(int64(3), "device-no-name")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT u.id, COALESCE(NULLIF(u.name, ''), u.device_id) AS name")).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	friends, err := s.ListNeighbors(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, int64(2), friends[0].ID)
	assert.Equal(t, "Bob", friends[0].Name)
	assert.Equal(t, "device-no-name", friends[1].Name)
}

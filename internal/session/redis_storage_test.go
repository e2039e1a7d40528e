package session

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStorage(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	rs := NewRedisStorage(db, "test||")

	mock.ExpectGet("test||" + KeyToken).RedisNil()
	value, found, err := rs.GetItem(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)

	mock.ExpectMSet("test||"+KeyToken, "tkn", "test||"+KeyUser, `{"id":"1"}`).SetVal("OK")
	require.NoError(t, rs.SetItems(ctx, map[string]string{
		KeyUser:  `{"id":"1"}`,
		KeyToken: "tkn",
	}))

	mock.ExpectGet("test||" + KeyToken).SetVal("tkn")
	value, found, err = rs.GetItem(ctx, KeyToken)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "tkn", value)

	mock.ExpectSet("test||"+KeyUser, "{}", 0).SetVal("OK")
	require.NoError(t, rs.SetItem(ctx, KeyUser, "{}"))

	mock.ExpectDel("test||" + KeyToken).SetVal(1)
	require.NoError(t, rs.RemoveItem(ctx, KeyToken))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStorage_Errors(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	rs := NewRedisStorage(db, "")

	mock.ExpectGet(DefaultRedisKeyPrefix + KeyToken).SetErr(errors.New("conn refused"))
	_, _, err := rs.GetItem(ctx, KeyToken)
	require.Error(t, err)

	mock.ExpectDel(DefaultRedisKeyPrefix + KeyUser).SetErr(errors.New("conn refused"))
	require.Error(t, rs.RemoveItem(ctx, KeyUser))

	require.NoError(t, rs.SetItems(ctx, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

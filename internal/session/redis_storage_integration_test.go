//go:build integration

package session_test

import (
	"testing"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/session"
	fttesting "github.com/2beens/fittrack/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRedisStorage_SessionRoundTrip(t *testing.T) {
	ctx, rdb := fttesting.RunRedisContainer(t)
	storage := session.NewRedisStorage(rdb, "it||")

	ctrl := gomock.NewController(t)
	mockAuth := NewMockAuthenticator(ctrl)
	user := fakeUser()
	mockAuth.EXPECT().Login(gomock.Any(), user.Email, "secret123").
		Return(&api.AuthResponse{User: user, Token: "redis-token"}, nil)

	m := session.NewManager(storage, mockAuth)
	_, err := m.Login(ctx, user.Email, "secret123")
	require.NoError(t, err)

	keys, err := rdb.Keys(ctx, "it||*").Result()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"it||" + session.KeyToken, "it||" + session.KeyUser}, keys)

	restored := session.NewManager(storage, mockAuth)
	require.NoError(t, restored.Restore(ctx))
	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, "redis-token", restored.Token())
	assert.Equal(t, user, *restored.CurrentUser())

	require.NoError(t, restored.Logout(ctx))
	keys, err = rdb.Keys(ctx, "it||*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "authUser")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "authUser", `{"email":"a@b.com"}`))
	v, ok, err := m.Get(ctx, "authUser")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"email":"a@b.com"}`, v)

	require.NoError(t, m.Delete(ctx, "authUser"))
	require.NoError(t, m.Delete(ctx, "authUser"))
	_, ok, _ = m.Get(ctx, "authUser")
	assert.False(t, ok)
}

func TestNewRedisURLInvalida(t *testing.T) {
	_, err := NewRedis(context.Background(), "http://nao-e-redis", "x:")
	assert.Error(t, err)
}

package cache

import (
	"net"
	"testing"

	"hospital-directory/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	client, err := NewRedisClient(config.RedisConfig{Host: host, Port: port}, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	assert.Equal(t, mr.Addr(), client.Options().Addr)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	mr.Close()

	client, err := NewRedisClient(config.RedisConfig{Host: host, Port: port}, quietLogger())
	assert.Error(t, err)
	assert.Nil(t, client)
}

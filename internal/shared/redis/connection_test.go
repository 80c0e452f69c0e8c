package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starsystem-server/internal/shared/config"
)

func TestConnect_Disabled(t *testing.T) {
	client, err := Connect(context.Background(), config.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestConnect_BadURL(t *testing.T) {
	_, err := Connect(context.Background(), config.RedisConfig{Enabled: true, URL: "http://not-redis"})
	assert.Error(t, err)
}

func TestNilClient(t *testing.T) {
	var c *Client
	assert.NoError(t, c.Close())
	assert.Error(t, c.Health(context.Background()))
}

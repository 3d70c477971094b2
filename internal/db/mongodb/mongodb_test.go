package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AI2HU/mongoping/internal/config"
)

func TestClientOptions(t *testing.T) {
	cfg := &config.Config{
		URI:                    "mongodb://localhost:27017/?serverSelectionTimeoutMS=60000",
		ServerSelectionTimeout: 5 * time.Second,
		AppName:                "mongoping",
	}

	opts := New(cfg).clientOptions()
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, 5*time.Second, *opts.ServerSelectionTimeout)
	require.NotNil(t, opts.AppName)
	assert.Equal(t, "mongoping", *opts.AppName)
}

func TestConnectMalformedURI(t *testing.T) {
	m := New(&config.Config{URI: "not-a-mongo-uri", ServerSelectionTimeout: time.Second})

	err := m.Connect(context.Background())
	assert.Error(t, err)
	assert.NoError(t, m.Disconnect(context.Background()))
}

func TestCheckBeforeConnect(t *testing.T) {
	m := New(&config.Config{URI: "mongodb://localhost:27017"})

	_, err := m.Check(context.Background())
	assert.EqualError(t, err, "not connected to database")
}

func TestCheckUnreachableHost(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for server selection to time out")
	}

	m := New(&config.Config{
		URI:                    "mongodb://127.0.0.1:1/?directConnection=true",
		ServerSelectionTimeout: 300 * time.Millisecond,
	})

	ctx := context.Background()
	require.NoError(t, m.Connect(ctx))
	defer m.Disconnect(ctx)

	start := time.Now()
	_, err := m.Check(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server selection")
	assert.Less(t, time.Since(start), 5*time.Second)
}

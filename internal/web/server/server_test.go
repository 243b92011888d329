package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig(okHandler())

	assert.Equal(t, ":8080", config.Address)
	assert.Equal(t, 15*time.Second, config.ReadTimeout)
	assert.Equal(t, 15*time.Second, config.WriteTimeout)
	assert.Equal(t, 60*time.Second, config.IdleTimeout)
	assert.Equal(t, 30*time.Second, config.ShutdownTimeout)
	assert.Equal(t, 1<<20, config.MaxHeaderBytes)
}

func TestNewServer(t *testing.T) {
	srv, err := New(DefaultConfig(okHandler()))
	require.NoError(t, err)

	assert.Equal(t, ":8080", srv.Addr())
	assert.Equal(t, 15*time.Second, srv.httpServer.ReadTimeout)
	assert.NotNil(t, srv.logger)
}

func TestNewServerErrors(t *testing.T) {
	_, err := New(nil)
	assert.EqualError(t, err, "server config cannot be nil")

	_, err = New(&Config{Address: ":0"})
	assert.EqualError(t, err, "handler cannot be nil")
}

func TestRunServesAndShutsDown(t *testing.T) {
	config := DefaultConfig(okHandler())
	config.Address = "127.0.0.1:0"
	config.ShutdownTimeout = 5 * time.Second

	srv, err := New(config)
	require.NoError(t, err)
	require.NoError(t, srv.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	resp, err := http.Get("http://" + srv.Addr())
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunListenError(t *testing.T) {
	first, err := New(&Config{Address: "127.0.0.1:0", Handler: okHandler()})
	require.NoError(t, err)
	require.NoError(t, first.Listen())
	defer first.listener.Close()

	second, err := New(&Config{Address: first.Addr(), Handler: okHandler()})
	require.NoError(t, err)

	err = second.Run(context.Background())
	assert.Error(t, err)
}

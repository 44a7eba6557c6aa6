package cmd

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tourism-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewHTTPServer(t *testing.T) {
	cfg := &utils.Config{
		App: utils.AppConfig{Port: "8081"},
		Server: utils.ServerConfig{
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 3 * time.Second,
			IdleTimeout:  4 * time.Second,
		},
	}

	srv := newHTTPServer(http.NotFoundHandler(), cfg)

	assert.Equal(t, ":8081", srv.Addr)
	assert.Equal(t, 2*time.Second, srv.ReadTimeout)
	assert.Equal(t, 3*time.Second, srv.WriteTimeout)
	assert.Equal(t, 4*time.Second, srv.IdleTimeout)
}

func TestServe_StopsOnCancel(t *testing.T) {
	cfg := &utils.Config{
		App:    utils.AppConfig{Port: "0"},
		Server: utils.ServerConfig{ShutdownTimeout: time.Second},
	}
	srv := newHTTPServer(http.NotFoundHandler(), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, cfg, zap.NewNop()) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

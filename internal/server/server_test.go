package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mealplan-gateway/backend/config"
	"github.com/pageza/mealplan-gateway/backend/internal/logger"
)

func TestNew(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Host = "localhost"
	cfg.Server.Port = "8080"

	srv := New(cfg, gin.New(), logger.Discard())
	require.NotNil(t, srv)
	assert.Equal(t, "localhost:8080", srv.Addr())
	assert.Equal(t, cfg.Server.ReadTimeout, srv.http.ReadTimeout)
}

func TestServeAndShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := New(config.Default(), router, logger.Discard())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

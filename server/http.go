package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	_const "arena_client/internal/const"
	"arena_client/internal/logging"
)

// NewRouter 状态服务路由
func NewRouter(store *Store) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"cycles": store.Cycles(),
		})
	})

	r.GET("/snapshot", func(c *gin.Context) {
		snap, ok := store.Latest()
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"message": "no snapshot yet",
			})
			return
		}
		c.JSON(http.StatusOK, snap)
	})

	return r
}

// Serve 启动状态服务，ctx 结束时关闭
func Serve(ctx context.Context, addr string, store *Store) error {
	log := logging.New("http")
	srv := &http.Server{
		Addr:    addr,
		Handler: NewRouter(store),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), _const.HTTPShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("http shutdown", "error", err)
		}
	}()

	log.Info("status server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

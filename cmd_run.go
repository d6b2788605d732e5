package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"arena_client/global"
	"arena_client/internal/logging"
	"arena_client/server"
)

var runFlags struct {
	http bool
	addr string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Extract a snapshot every interval until interrupted",
	RunE:  runLoop,
}

func init() {
	f := runCmd.Flags()
	f.BoolVar(&runFlags.http, "http", false, "serve the latest snapshot over HTTP")
	f.StringVar(&runFlags.addr, "addr", "", "HTTP listen address (default: http.addr from config)")
}

func runLoop(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(rootFlags.config); err != nil {
		return err
	}
	cfg := global.ArenaConfig
	log := logging.New("main")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	arena, closeBackend, err := newArena(ctx)
	if err != nil {
		return err
	}
	defer closeBackend()

	store := server.NewStore()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Loop(ctx, arena, cfg.Interval, store)
	})
	if runFlags.http {
		addr := runFlags.addr
		if addr == "" {
			addr = cfg.HTTP.Addr
		}
		g.Go(func() error {
			return server.Serve(ctx, addr, store)
		})
	}

	log.Info("extraction started", "interval", cfg.Interval, "ocr", cfg.OCR.Backend, "http", runFlags.http)
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("extraction stopped", "cycles", store.Cycles())
	return nil
}

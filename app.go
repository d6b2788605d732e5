package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"arena_client/global"
	_const "arena_client/internal/const"
	"arena_client/internal/debugshot"
	"arena_client/internal/input"
	"arena_client/internal/logging"
	"arena_client/internal/matcher"
	"arena_client/internal/occupancy"
	"arena_client/internal/overlay"
	"arena_client/internal/recognize"
	"arena_client/internal/scheduler"
	"arena_client/internal/telemetry"
	"arena_client/internal/tesseract"
	"arena_client/server"
	"arena_client/util"
)

// loadConfig 读取配置，未指定文件时使用嵌入的 config.yaml
func loadConfig(path string) error {
	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = File.ReadFile("config.yaml")
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	cfg, err := global.LoadConfig(data)
	if err != nil {
		return err
	}
	global.ArenaConfig = cfg
	logging.Init(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)
	return nil
}

// loadVocabulary 读取英雄和装备词表
func loadVocabulary(cfg global.Config) (*matcher.Vocabulary, *matcher.Vocabulary, error) {
	if cfg.Assets.VocabularyFile != "" {
		return matcher.LoadAssets(cfg.Assets.VocabularyFile)
	}
	data, err := File.ReadFile("assets/vocabulary.yaml")
	if err != nil {
		return nil, nil, fmt.Errorf("read embedded vocabulary: %w", err)
	}
	return matcher.ParseAssets(data)
}

// unavailable 识别后端初始化失败时使用，每次识别都返回同一个错误
type unavailable struct {
	err error
}

func (u unavailable) ReadText(image.Image) ([]string, error) {
	return nil, u.err
}

// newBackend 按配置创建识别后端，第一次识别时才真正初始化
func newBackend(cfg global.OCRConfig, log *slog.Logger) (recognize.Backend, func()) {
	if cfg.Backend == global.OCRBackendService {
		svc := util.NewOCRService(cfg.ServiceHost, cfg.ServicePort, cfg.Timeout)
		if !svc.Ping() {
			log.Warn("ocr service not reachable", "host", cfg.ServiceHost, "port", cfg.ServicePort)
		}
		return svc, func() {}
	}

	var pool *tesseract.Backend
	lazy := recognize.NewLazy(func() recognize.Backend {
		b, err := tesseract.New(0, cfg.Language, cfg.Whitelist)
		if err != nil {
			log.Error("tesseract init failed", "error", err)
			return unavailable{err: err}
		}
		pool = b
		return b
	})
	return lazy, func() {
		if pool != nil {
			pool.Close()
		}
	}
}

// newArena 根据配置组装提取引擎
func newArena(ctx context.Context) (*server.Arena, func(), error) {
	cfg := global.ArenaConfig
	log := logging.New("main")

	champions, items, err := loadVocabulary(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("vocabulary loaded", "champions", champions.Len(), "items", items.Len())

	screen := util.NewScreen()
	backend, closeBackend := newBackend(cfg.OCR, log)

	var itemOpts []matcher.Option
	if cfg.Matcher.ItemContainment {
		itemOpts = append(itemOpts, matcher.WithContainment())
	}

	var recorder *debugshot.Recorder
	if cfg.Debug.Enabled {
		recorder = debugshot.NewRecorder(screen, cfg.Debug.Dir, cfg.Debug.Margin, cfg.Debug.DedupeDistance)
	}

	ref := cfg.Occupancy.Color
	queue := overlay.NewQueue(_const.OverlayQueueSize)
	go drainOverlay(ctx, queue)

	arena := server.NewArena(server.Deps{
		Layout:             cfg.ScreenLayout(),
		Screen:             screen,
		OCR:                recognize.NewService(backend, screen, cfg.OCR.FallbackScale),
		Occupancy:          occupancy.NewDetector(screen, color.RGBA{R: ref[0], G: ref[1], B: ref[2], A: 255}, cfg.Occupancy.Tolerance, cfg.Occupancy.MinRun),
		Champions:          matcher.New(champions, cfg.Matcher.ChampionThreshold),
		Items:              matcher.New(items, cfg.Matcher.ItemThreshold, itemOpts...),
		Scheduler:          scheduler.New(cfg.Scheduler.Stagger, cfg.Scheduler.Workers),
		Debug:              recorder,
		Pointer:            input.Mouse{},
		Telemetry:          telemetry.NewClient(cfg.Telemetry.URL, cfg.Telemetry.LevelTimeout, cfg.Telemetry.AliveTimeout),
		Overlay:            queue,
		Scale:              cfg.OCR.Scale,
		TimeShift:          cfg.Round.TimeShift,
		AbnormalGoldRounds: cfg.Round.AbnormalGoldRounds,
	})
	return arena, closeBackend, nil
}

// drainOverlay 没有界面时把覆盖层消息写入调试日志
func drainOverlay(ctx context.Context, q *overlay.Queue) {
	log := logging.New("overlay")
	for {
		select {
		case <-ctx.Done():
			return
		case m := <-q.Messages():
			if m.Clear {
				log.Debug("overlay cleared")
				continue
			}
			for _, l := range m.Labels {
				log.Debug("overlay label", "text", l.Text, "x", l.Position.X, "y", l.Position.Y)
			}
		}
	}
}

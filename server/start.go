package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"arena_client/internal/logging"
	"arena_client/model"
)

// Extractor 产生一份快照
type Extractor interface {
	Snapshot(ctx context.Context) model.GameStateSnapshot
}

// Store 保存最近一次快照，供状态服务读取
type Store struct {
	mu     sync.RWMutex
	latest *model.GameStateSnapshot
	cycles uint64
}

// NewStore 创建空的快照存储
func NewStore() *Store {
	return &Store{}
}

// Set 替换最近的快照
func (s *Store) Set(snap model.GameStateSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = &snap
	s.cycles++
}

// Latest 返回最近的快照，第一轮完成前 ok 为 false
func (s *Store) Latest() (model.GameStateSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return model.GameStateSnapshot{}, false
	}
	return *s.latest, true
}

// Cycles 已完成的周期数
func (s *Store) Cycles() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cycles
}

// Loop 按 interval 顺序执行提取周期，直到 ctx 结束
// 上一轮没有结束前不会开始下一轮
func Loop(ctx context.Context, extractor Extractor, interval time.Duration, store *Store) error {
	if interval <= 0 {
		return errors.New("interval must be positive")
	}
	log := logging.New("loop")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			log.Info("loop stopped", "reason", err)
			return err
		}

		snap := extractor.Snapshot(ctx)
		if store != nil {
			store.Set(snap)
		}
		log.Info("cycle finished",
			"round", snap.Round,
			"gold", snap.Gold,
			"level", snap.Level,
			"duration", snap.Duration)

		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
}

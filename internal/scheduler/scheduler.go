// Package scheduler 单个提取周期内的并行区域提取
//
// 每个区域一个 worker，按输入顺序错开启动，调用方阻塞直到全部完成。
// 结果按输入下标写入预分配的切片，与完成顺序无关。
package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"arena_client/internal/logging"
	"arena_client/model"
)

// Scheduler 并行提取调度器，零值可用（不错开、不限并发）
type Scheduler struct {
	// Stagger 相邻 worker 启动间隔，减少截屏资源争用
	Stagger time.Duration
	// Limit 最大并发数，<= 0 表示每个区域一个 worker
	Limit int

	sleep func(time.Duration)
	log   *slog.Logger
}

// New 创建调度器
func New(stagger time.Duration, limit int) *Scheduler {
	return &Scheduler{Stagger: stagger, Limit: limit}
}

// Task 单个区域的提取任务，i 为区域下标
type Task[T any] func(i int, region model.ScreenRegion) T

// Run 并行执行任务并等待全部完成，worker panic 时对应位置为零值
func Run[T any](s *Scheduler, regions []model.ScreenRegion, task Task[T]) []T {
	var zero T
	return RunWithFallback(s, regions, zero, task)
}

// RunWithFallback 同 Run，worker panic 时对应位置为 fallback
func RunWithFallback[T any](s *Scheduler, regions []model.ScreenRegion, fallback T, task Task[T]) []T {
	results := make([]T, len(regions))
	for i := range results {
		results[i] = fallback
	}

	var g errgroup.Group
	if s.Limit > 0 {
		g.SetLimit(s.Limit)
	}
	for i, region := range regions {
		if i > 0 && s.Stagger > 0 {
			s.pause(s.Stagger)
		}
		g.Go(func() error {
			// 每个 worker 只写自己的位置
			if err := s.protect(region, func() { results[i] = task(i, region) }); err != nil {
				s.logger().Warn("extraction worker failed", "region", region.Label, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (s *Scheduler) protect(region model.ScreenRegion, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", region.Label, r)
		}
	}()
	fn()
	return nil
}

func (s *Scheduler) pause(d time.Duration) {
	if s.sleep != nil {
		s.sleep(d)
		return
	}
	time.Sleep(d)
}

func (s *Scheduler) logger() *slog.Logger {
	if s.log == nil {
		return logging.New("scheduler")
	}
	return s.log
}

// Package recognize 将截图转换为最可能的文本
//
// 所有识别器内部错误都会折叠为空文本结果，单个区域识别失败不会阻塞整个提取周期。
package recognize

import (
	"fmt"
	"image"
	"log/slog"
	"sync"

	"github.com/disintegration/imaging"

	"arena_client/internal/logging"
	"arena_client/model"
)

// Backend 底层文字识别器，返回按阅读顺序排列的全部文本行
type Backend interface {
	ReadText(img image.Image) ([]string, error)
}

// Screen 屏幕截图
type Screen interface {
	Capture(region model.ScreenRegion) (image.Image, error)
}

// Outcome 识别结果类型
type Outcome int

const (
	Success Outcome = iota // 识别到文本
	Empty                  // 识别器未返回任何结果
	Failure                // 截图或识别器出错
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Empty:
		return "empty"
	default:
		return "failure"
	}
}

// Result 单个区域在一个周期内的识别结果
type Result struct {
	Text    string
	Outcome Outcome
	Err     error
}

// OK 是否识别到文本
func (r Result) OK() bool {
	return r.Outcome == Success
}

// Service 文字识别服务，可被多个 worker 并发使用
type Service struct {
	backend       Backend
	screen        Screen
	fallbackScale int
	log           *slog.Logger
}

// NewService 创建识别服务，fallbackScale 为两段识别第二次的放大倍数
func NewService(backend Backend, screen Screen, fallbackScale int) *Service {
	if fallbackScale < 1 {
		fallbackScale = 1
	}
	return &Service{
		backend:       backend,
		screen:        screen,
		fallbackScale: fallbackScale,
		log:           logging.New("recognize"),
	}
}

// Text 截取区域并按 scale 放大后识别
func (s *Service) Text(region model.ScreenRegion, scale int) Result {
	img, err := s.screen.Capture(region)
	if err != nil {
		s.log.Debug("capture failed", "region", region.Label, "error", err)
		return Result{Outcome: Failure, Err: err}
	}
	return s.Recognize(img, scale)
}

// Recognize 放大图像后识别，返回第一行文本
func (s *Service) Recognize(img image.Image, scale int) Result {
	lines, err := s.read(Scale(img, scale))
	if err != nil {
		return Result{Outcome: Failure, Err: err}
	}
	if len(lines) == 0 {
		return Result{Outcome: Empty}
	}
	return Result{Text: lines[0], Outcome: Success}
}

// TwoPass 先按原尺寸识别，只有没有任何结果时才按 fallbackScale 放大重试
// 用于图标旁的小号文字
func (s *Service) TwoPass(img image.Image) Result {
	lines, err := s.read(img)
	if err != nil {
		return Result{Outcome: Failure, Err: err}
	}
	if len(lines) == 0 {
		if lines, err = s.read(Scale(img, s.fallbackScale)); err != nil {
			return Result{Outcome: Failure, Err: err}
		}
	}
	if len(lines) == 0 {
		return Result{Outcome: Empty}
	}
	return Result{Text: lines[0], Outcome: Success}
}

// read 调用识别器，panic 也转换为错误
func (s *Service) read(img image.Image) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recognizer panic: %v", r)
		}
		if err != nil {
			s.log.Debug("recognition failed", "error", err)
		}
	}()
	return s.backend.ReadText(img)
}

// Scale 按整数倍放大图像，scale <= 1 时原样返回
func Scale(img image.Image, scale int) image.Image {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.Lanczos)
}

// Lazy 进程级识别后端，首次使用时才初始化
type Lazy struct {
	once    sync.Once
	init    func() Backend
	backend Backend
}

// NewLazy 创建延迟初始化的后端
func NewLazy(init func() Backend) *Lazy {
	return &Lazy{init: init}
}

// ReadText 实现 Backend
func (l *Lazy) ReadText(img image.Image) ([]string, error) {
	l.once.Do(func() {
		l.backend = l.init()
	})
	return l.backend.ReadText(img)
}

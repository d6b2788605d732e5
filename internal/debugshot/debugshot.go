// Package debugshot 识别失败时保存带标记的调试截图，仅用于事后排查
package debugshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/corona10/goimagehash"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"arena_client/internal/logging"
	"arena_client/model"
)

// ErrDuplicate 与同一标签上一张截图几乎相同，未保存
var ErrDuplicate = errors.New("debugshot: near-duplicate artifact skipped")

var markerColor = color.NRGBA{R: 255, A: 255}

const markerWidth = 2

// Screen 屏幕截图
type Screen interface {
	Capture(region model.ScreenRegion) (image.Image, error)
}

// Artifact 一张已保存的调试截图
type Artifact struct {
	Label      string
	Region     model.ScreenRegion
	Text       string
	Path       string
	CapturedAt time.Time
}

// Recorder 调试截图记录器，nil 表示关闭
type Recorder struct {
	dir    string
	margin int
	dedupe int
	screen Screen
	now    func() time.Time
	newID  func() string
	log    *slog.Logger

	mu   sync.Mutex
	last map[string]*goimagehash.ImageHash
}

// NewRecorder 创建记录器，dedupeDistance < 0 时不做近似去重
func NewRecorder(screen Screen, dir string, margin, dedupeDistance int) *Recorder {
	return &Recorder{
		dir:    dir,
		margin: margin,
		dedupe: dedupeDistance,
		screen: screen,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
		log:    logging.New("debugshot"),
		last:   make(map[string]*goimagehash.ImageHash),
	}
}

// Dir 截图目录
func (r *Recorder) Dir() string {
	return r.dir
}

// Record 截取四周扩展 margin 后的区域，用红框标出原识别区域并保存
func (r *Recorder) Record(label string, region model.ScreenRegion, text string) (Artifact, error) {
	area := region.Expand(r.margin)
	if area.Left < 0 {
		area.Left = 0
	}
	if area.Top < 0 {
		area.Top = 0
	}

	img, err := r.screen.Capture(area)
	if err != nil {
		return Artifact{}, fmt.Errorf("capture %s: %w", label, err)
	}

	if r.dedupe >= 0 {
		if dup, err := r.seen(label, img); err != nil {
			return Artifact{}, err
		} else if dup {
			return Artifact{}, ErrDuplicate
		}
	}

	canvas := imaging.Clone(img)
	offset := image.Pt(region.Left-area.Left, region.Top-area.Top)
	drawRect(canvas, image.Rectangle{Min: offset, Max: offset.Add(image.Pt(region.Width(), region.Height()))})

	if err = os.MkdirAll(r.dir, 0755); err != nil {
		return Artifact{}, fmt.Errorf("create debug dir: %w", err)
	}

	at := r.now()
	name := fmt.Sprintf("%s_%d_%s.png", sanitize(label), at.Unix(), r.newID()[:8])
	path := filepath.Join(r.dir, name)
	if err = imaging.Save(canvas, path); err != nil {
		return Artifact{}, fmt.Errorf("save %s: %w", path, err)
	}

	return Artifact{Label: label, Region: region, Text: text, Path: path, CapturedAt: at}, nil
}

// Capture 记录调试截图，错误只写日志，不影响提取结果
func (r *Recorder) Capture(label string, region model.ScreenRegion, text string) {
	if r == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			r.log.Error("debug capture panicked", "label", label, "panic", p)
		}
	}()

	artifact, err := r.Record(label, region, text)
	switch {
	case errors.Is(err, ErrDuplicate):
		r.log.Debug("debug capture skipped", "label", label, "text", text)
	case err != nil:
		r.log.Warn("debug capture failed", "label", label, "region", region.String(), "error", err)
	default:
		r.log.Warn("recognition failed", "label", label, "text", text,
			"region", region.String(), "artifact", artifact.Path)
	}
}

// seen 计算感知哈希并与同标签上一张比较
func (r *Recorder) seen(label string, img image.Image) (bool, error) {
	hash, err := goimagehash.DifferenceHash(img)
	if err != nil {
		return false, fmt.Errorf("hash %s: %w", label, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.last[label]; ok {
		if d, err := prev.Distance(hash); err == nil && d <= r.dedupe {
			return true, nil
		}
	}
	r.last[label] = hash
	return false, nil
}

// drawRect 在矩形内侧画 markerWidth 宽的边框
func drawRect(img *image.NRGBA, rect image.Rectangle) {
	for t := 0; t < markerWidth; t++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetNRGBA(x, rect.Min.Y+t, markerColor)
			img.SetNRGBA(x, rect.Max.Y-1-t, markerColor)
		}
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			img.SetNRGBA(rect.Min.X+t, y, markerColor)
			img.SetNRGBA(rect.Max.X-1-t, y, markerColor)
		}
	}
}

func sanitize(label string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '_'
		}
		return r
	}, label)
}

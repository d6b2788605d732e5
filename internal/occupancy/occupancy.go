// Package occupancy 通过血条颜色判断槽位是否有单位，不需要文字识别
package occupancy

import (
	"image"
	"image/color"
	"log/slog"

	"arena_client/internal/logging"
	"arena_client/model"
)

// Screen 屏幕截图
type Screen interface {
	Capture(region model.ScreenRegion) (image.Image, error)
}

// Detector 血条颜色检测
// 同一行内至少 MinRun 个相邻像素与参考色在容差内一致才算命中，孤立像素视为噪点
type Detector struct {
	Color     color.RGBA
	Tolerance int
	MinRun    int

	screen Screen
	log    *slog.Logger
}

// NewDetector 创建检测器
func NewDetector(screen Screen, ref color.RGBA, tolerance, minRun int) *Detector {
	if minRun < 1 {
		minRun = 1
	}
	return &Detector{
		Color:     ref,
		Tolerance: tolerance,
		MinRun:    minRun,
		screen:    screen,
		log:       logging.New("occupancy"),
	}
}

// Matches 图像中是否存在足够长的参考色像素段
func (d *Detector) Matches(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		run := 0
		for x := b.Min.X; x < b.Max.X; x++ {
			if !d.near(img.At(x, y)) {
				run = 0
				continue
			}
			run++
			if run >= d.MinRun {
				return true
			}
		}
	}
	return false
}

func (d *Detector) near(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return within(int(r>>8), int(d.Color.R), d.Tolerance) &&
		within(int(g>>8), int(d.Color.G), d.Tolerance) &&
		within(int(b>>8), int(d.Color.B), d.Tolerance)
}

func within(v, ref, tolerance int) bool {
	diff := v - ref
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}

// Occupied 截取区域并检测，截图失败视为未占用
func (d *Detector) Occupied(region model.ScreenRegion) bool {
	img, err := d.screen.Capture(region)
	if err != nil {
		d.log.Debug("capture failed", "region", region.Label, "error", err)
		return false
	}
	return d.Matches(img)
}

// FirstEmpty 返回第一个未占用槽位的下标，全部占用时返回 -1
func FirstEmpty(occupied []bool) int {
	for slot, ok := range occupied {
		if !ok {
			return slot
		}
	}
	return model.NoEmptySlot
}

package util

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/vova616/screenshot"

	"arena_client/model"
)

// Screen 屏幕区域截图
type Screen struct {
	grab func(image.Rectangle) (*image.RGBA, error)
}

// NewScreen 创建使用系统截图的 Screen
func NewScreen() *Screen {
	return &Screen{grab: screenshot.CaptureRect}
}

// Capture
// @function: Capture
// @description: 截取指定区域，返回图像坐标从 (0,0) 开始，尺寸与区域一致
// @param: region model.ScreenRegion 识别区域
// @return: image.Image, error
func (s *Screen) Capture(region model.ScreenRegion) (image.Image, error) {
	img, err := s.grab(region.Rect())
	if err != nil {
		return nil, fmt.Errorf("无法截取屏幕图像 %s: %w", region, err)
	}
	if img.Bounds().Min == (image.Point{}) {
		return img, nil
	}
	return imaging.Clone(img), nil
}

// Crop
// @function: Crop
// @description: 从父区域的截图中裁剪出子区域
// @param: img image.Image 父区域截图
// @param: parent, child model.ScreenRegion
// @return: image.Image
func Crop(img image.Image, parent, child model.ScreenRegion) image.Image {
	return imaging.Crop(img, child.Within(parent))
}

package model

import (
	"fmt"
	"image"
)

// ScreenRegion 屏幕上的固定识别区域（左、上、右、下，屏幕像素坐标）
// 值类型，布局中定义一次后只读
type ScreenRegion struct {
	Label  string `json:"label" yaml:"label"`
	Left   int    `json:"left" yaml:"left"`
	Top    int    `json:"top" yaml:"top"`
	Right  int    `json:"right" yaml:"right"`
	Bottom int    `json:"bottom" yaml:"bottom"`
}

// NewRegion 创建识别区域
func NewRegion(label string, left, top, right, bottom int) ScreenRegion {
	return ScreenRegion{Label: label, Left: left, Top: top, Right: right, Bottom: bottom}
}

// Rect 转换为 image.Rectangle
func (r ScreenRegion) Rect() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

// Width 区域宽度
func (r ScreenRegion) Width() int {
	return r.Right - r.Left
}

// Height 区域高度
func (r ScreenRegion) Height() int {
	return r.Bottom - r.Top
}

// Center 区域中心点，用于鼠标悬停和覆盖层标签定位
func (r ScreenRegion) Center() image.Point {
	return image.Pt((r.Left+r.Right)/2, (r.Top+r.Bottom)/2)
}

// Shift 平移区域，返回新的区域
func (r ScreenRegion) Shift(dx, dy int) ScreenRegion {
	r.Left += dx
	r.Right += dx
	r.Top += dy
	r.Bottom += dy
	return r
}

// Expand 向四周扩展 margin 像素
func (r ScreenRegion) Expand(margin int) ScreenRegion {
	r.Left -= margin
	r.Top -= margin
	r.Right += margin
	r.Bottom += margin
	return r
}

// Within 返回相对于父区域左上角的矩形，用于从整条截图中裁剪子区域
func (r ScreenRegion) Within(parent ScreenRegion) image.Rectangle {
	return r.Rect().Sub(image.Pt(parent.Left, parent.Top))
}

func (r ScreenRegion) String() string {
	return fmt.Sprintf("%s[%d,%d,%d,%d]", r.Label, r.Left, r.Top, r.Right, r.Bottom)
}

// Package input 鼠标操作
package input

import "github.com/go-vgo/robotgo"

// Mouse 使用 robotgo 移动鼠标
type Mouse struct{}

// Move 移动鼠标到屏幕坐标
func (Mouse) Move(x, y int) {
	robotgo.Move(x, y)
}

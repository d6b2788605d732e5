// Package tesseract 基于 gosseract 的本地识别后端
package tesseract

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"runtime"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Backend 持有固定数量的 tesseract 客户端
// 单个 gosseract.Client 不能并发使用，每次识别从池中借出一个
type Backend struct {
	clients chan *gosseract.Client
}

// New 创建 size 个客户端，size <= 0 时按 CPU 数量
func New(size int, language, whitelist string) (*Backend, error) {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	b := &Backend{clients: make(chan *gosseract.Client, size)}
	for i := 0; i < size; i++ {
		c := gosseract.NewClient()
		if err := c.SetLanguage(language); err != nil {
			b.Close()
			_ = c.Close()
			return nil, fmt.Errorf("tesseract language %q: %w", language, err)
		}
		if whitelist != "" {
			_ = c.SetWhitelist(whitelist)
		}
		_ = c.SetPageSegMode(gosseract.PSM_SINGLE_LINE)
		b.clients <- c
	}
	return b, nil
}

// ReadText 识别图片，返回非空文本行
func (b *Backend) ReadText(img image.Image) ([]string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, imaging.Grayscale(img)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	c := <-b.clients
	defer func() { b.clients <- c }()

	if err := c.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("tesseract set image: %w", err)
	}
	text, err := c.Text()
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// Close 释放所有客户端
func (b *Backend) Close() {
	for {
		select {
		case c := <-b.clients:
			_ = c.Close()
		default:
			return
		}
	}
}

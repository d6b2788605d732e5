// Package overlay 向屏幕覆盖层发送标签消息
//
// 提取引擎只负责生产消息，覆盖层界面在另一侧消费。
package overlay

import (
	"image"
	"log/slog"

	"arena_client/internal/logging"
)

// Label 显示在屏幕上的文字
type Label struct {
	Text     string      `json:"text"`
	Position image.Point `json:"position"`
}

// Message 覆盖层消息：清空全部标签，或追加一组标签
type Message struct {
	Clear  bool    `json:"clear,omitempty"`
	Labels []Label `json:"labels,omitempty"`
}

// Queue 覆盖层消息队列，发送不会阻塞提取周期
type Queue struct {
	ch  chan Message
	log *slog.Logger
}

// NewQueue 创建指定长度的队列
func NewQueue(size int) *Queue {
	return &Queue{ch: make(chan Message, size), log: logging.New("overlay")}
}

// Clear 发送清空消息
func (q *Queue) Clear() bool {
	return q.send(Message{Clear: true})
}

// Show 发送一组标签，空列表不发送
func (q *Queue) Show(labels []Label) bool {
	if len(labels) == 0 {
		return false
	}
	return q.send(Message{Labels: labels})
}

// Messages 消费端读取的通道
func (q *Queue) Messages() <-chan Message {
	return q.ch
}

func (q *Queue) send(m Message) bool {
	if q == nil {
		return false
	}
	select {
	case q.ch <- m:
		return true
	default:
		q.log.Debug("overlay queue full, message dropped", "clear", m.Clear, "labels", len(m.Labels))
		return false
	}
}

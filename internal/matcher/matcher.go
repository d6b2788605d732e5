// Package matcher 将带噪声的识别文本对齐到标准名称表
//
// 先做精确匹配，否则按名称表顺序计算相似度，返回第一个达到阈值的名称。
// 不做全局最优搜索，调用方需要容忍偶尔的误匹配。
package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Matcher 名称匹配器
type Matcher struct {
	vocab       *Vocabulary
	threshold   float64
	containment bool
}

// Option 匹配器选项
type Option func(*Matcher)

// WithContainment 名称表成员出现在识别文本中即视为匹配，用于装备名称
func WithContainment() Option {
	return func(m *Matcher) { m.containment = true }
}

// New 创建匹配器
func New(vocab *Vocabulary, threshold float64, opts ...Option) *Matcher {
	m := &Matcher{vocab: vocab, threshold: threshold}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Threshold 接受阈值
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Match 返回匹配到的标准名称，没有把握时返回空字符串
func (m *Matcher) Match(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if m.vocab.Contains(text) {
		return text
	}
	for _, name := range m.vocab.names {
		if m.containment && strings.Contains(text, name) {
			return name
		}
		if Ratio(name, text) >= m.threshold {
			return name
		}
	}
	return ""
}

// Ratio 基于编辑距离的相似度，范围 [0,1]，两个空串为 1
func Ratio(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

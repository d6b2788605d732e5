package matcher

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vocabulary 有序的标准名称集合，创建后只读，可在多个 goroutine 间共享
type Vocabulary struct {
	names []string
	index map[string]struct{}
}

// NewVocabulary 按给定顺序创建名称表，忽略空白和重复项
func NewVocabulary(names ...string) *Vocabulary {
	v := &Vocabulary{index: make(map[string]struct{}, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := v.index[name]; ok {
			continue
		}
		v.index[name] = struct{}{}
		v.names = append(v.names, name)
	}
	return v
}

// Contains 是否为名称表成员
func (v *Vocabulary) Contains(name string) bool {
	_, ok := v.index[name]
	return ok
}

// Names 返回名称副本
func (v *Vocabulary) Names() []string {
	return append([]string(nil), v.names...)
}

// Len 名称数量
func (v *Vocabulary) Len() int {
	return len(v.names)
}

// Assets 静态资源文件中的英雄和装备名称
type Assets struct {
	Champions []string `yaml:"champions"`
	Items     []string `yaml:"items"`
}

// ParseAssets 解析 yaml 格式的名称表
func ParseAssets(data []byte) (*Vocabulary, *Vocabulary, error) {
	var a Assets
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, nil, fmt.Errorf("parse vocabulary: %w", err)
	}
	champions, items := NewVocabulary(a.Champions...), NewVocabulary(a.Items...)
	if champions.Len() == 0 {
		return nil, nil, fmt.Errorf("parse vocabulary: no champions")
	}
	return champions, items, nil
}

// LoadAssets 读取名称表文件
func LoadAssets(path string) (*Vocabulary, *Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	return ParseAssets(data)
}

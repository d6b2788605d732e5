package model

import "time"

// 快照字段在识别失败时使用的占位值
const (
	DefaultLevel     = 1
	DefaultAlive     = 1
	DefaultGold      = 0
	DefaultRoundTime = -1
	NoEmptySlot      = -1
)

// HealthEntry 小小英雄排名和生命值
type HealthEntry struct {
	Rank   int `json:"rank"`
	Health int `json:"health"`
}

// ShopEntry 商店槽位和匹配到的英雄名称，未匹配时 Name 为空
type ShopEntry struct {
	Slot int    `json:"slot"`
	Name string `json:"name"`
}

// GameStateSnapshot 一个提取周期产生的对局状态
// 每个周期重新构建，返回后不再修改
type GameStateSnapshot struct {
	Level        int           `json:"level"`
	Alive        int           `json:"alive"`
	Gold         int           `json:"gold"`
	AbnormalGold int           `json:"abnormal_gold"`
	Round        string        `json:"round"`
	RoundTime    int           `json:"round_time"`
	Health       []HealthEntry `json:"health"`
	Shop         []ShopEntry   `json:"shop"`
	Items        []string      `json:"items"`
	Bench        []bool        `json:"bench"`
	EmptySlot    int           `json:"empty_slot"`
	Abnormal     string        `json:"abnormal"`
	CapturedAt   time.Time     `json:"captured_at"`
	Duration     time.Duration `json:"duration"`
}

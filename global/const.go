package global

import (
	"fmt"
	"image"

	"arena_client/model"
)

const (
	// 屏幕布局中各类槽位的数量，决定快照中定长数组的长度
	ShopSlotCount   = 5  // 商店槽位
	BenchSlotCount  = 9  // 备战区槽位
	ItemSlotCount   = 10 // 装备槽位
	PlayerCount     = 8  // 小小英雄数量
	benchSlotStride = 116
	healthRowStride = 72
)

const (
	// OCR 服务相关常量
	OCRServiceHost = "127.0.0.1" // OCR 服务主机地址
	OCRServicePort = 1224        // OCR 服务端口号

	// 本地客户端遥测地址
	TelemetryURL = "https://127.0.0.1:2999/liveclientdata/allgamedata"
)

// ItemSlot 装备槽位：鼠标悬停位置和提示框文字区域
// 部分装备只有在悬停时才会显示名称
type ItemSlot struct {
	Hover model.ScreenRegion `json:"hover" yaml:"hover"`
	Text  model.ScreenRegion `json:"text" yaml:"text"`
}

// Layout 1920x1080 下的固定识别区域
type Layout struct {
	Gold            model.ScreenRegion   `yaml:"gold"`
	AbnormalGold    model.ScreenRegion   `yaml:"abnormal_gold"`
	Round           model.ScreenRegion   `yaml:"round"`
	RoundTime       model.ScreenRegion   `yaml:"round_time"`
	Abnormal        model.ScreenRegion   `yaml:"abnormal"`
	HealthStrip     model.ScreenRegion   `yaml:"health_strip"`
	Health          []model.ScreenRegion `yaml:"health"`
	ShopStrip       model.ScreenRegion   `yaml:"shop_strip"`
	Shop            []model.ScreenRegion `yaml:"shop"`
	Bench           []model.ScreenRegion `yaml:"bench"`
	Items           []ItemSlot           `yaml:"items"`
	DefaultLocation image.Point          `yaml:"default_location"`
}

// DefaultLayout 返回默认布局
func DefaultLayout() Layout {
	l := Layout{
		Gold:            model.NewRegion("gold", 870, 883, 920, 909),
		AbnormalGold:    model.NewRegion("abnormal_gold", 870, 843, 920, 869),
		Round:           model.NewRegion("round", 767, 10, 870, 34),
		RoundTime:       model.NewRegion("round_time", 1133, 10, 1165, 34),
		Abnormal:        model.NewRegion("abnormal", 760, 60, 1160, 90),
		HealthStrip:     model.NewRegion("health", 1820, 200, 1880, 760),
		ShopStrip:       model.NewRegion("shop", 481, 1039, 1476, 1070),
		DefaultLocation: image.Pt(35, 500),
	}

	for i := 0; i < PlayerCount; i++ {
		top := 214 + i*healthRowStride
		l.Health = append(l.Health, model.NewRegion(fmt.Sprintf("health %d", i), 1840, top, 1880, top+20))
	}

	shopLeft := []int{484, 685, 888, 1089, 1292}
	for i, left := range shopLeft {
		l.Shop = append(l.Shop, model.NewRegion(fmt.Sprintf("shop slot %d", i), left, 1044, left+108, 1067))
	}

	for i := 0; i < BenchSlotCount; i++ {
		left := 369 + i*benchSlotStride
		l.Bench = append(l.Bench, model.NewRegion(fmt.Sprintf("bench slot %d", i), left, 777, left+50, 789))
	}

	hover := []image.Point{
		{259, 422}, {290, 395}, {283, 445}, {315, 418}, {307, 468},
		{256, 473}, {340, 400}, {346, 448}, {375, 370}, {380, 415},
	}
	for i, p := range hover {
		l.Items = append(l.Items, ItemSlot{
			Hover: model.NewRegion(fmt.Sprintf("item hover %d", i), p.X-5, p.Y-5, p.X+5, p.Y+5),
			Text:  model.NewRegion(fmt.Sprintf("item %d", i), p.X+14, p.Y+4, p.X+214, p.Y+28),
		})
	}
	return l
}

// Validate 检查布局：槽位数量非空，子区域位于所属整条截图区域内
func (l Layout) Validate() error {
	if len(l.Shop) == 0 || len(l.Bench) == 0 || len(l.Health) == 0 {
		return fmt.Errorf("layout: shop, bench and health regions must not be empty")
	}
	for _, r := range l.Health {
		if !r.Rect().In(l.HealthStrip.Rect()) {
			return fmt.Errorf("layout: %v outside health strip %v", r, l.HealthStrip)
		}
	}
	for _, r := range l.Shop {
		if !r.Rect().In(l.ShopStrip.Rect()) {
			return fmt.Errorf("layout: %v outside shop strip %v", r, l.ShopStrip)
		}
	}
	return nil
}

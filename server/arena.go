package server

import (
	"context"
	"image"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"arena_client/global"
	"arena_client/internal/debugshot"
	"arena_client/internal/logging"
	"arena_client/internal/matcher"
	"arena_client/internal/occupancy"
	"arena_client/internal/overlay"
	"arena_client/internal/recognize"
	"arena_client/internal/scheduler"
	"arena_client/model"
	"arena_client/util"
)

// Screen 截图接口
type Screen interface {
	Capture(region model.ScreenRegion) (image.Image, error)
}

// Pointer 鼠标移动接口，读取装备提示时使用
type Pointer interface {
	Move(x, y int)
}

// Telemetry 本地客户端数据接口
type Telemetry interface {
	Level(ctx context.Context) int
	Alive(ctx context.Context) int
}

// Deps 组装器依赖
type Deps struct {
	Layout    global.Layout
	Screen    Screen
	OCR       *recognize.Service
	Occupancy *occupancy.Detector
	Champions *matcher.Matcher
	Items     *matcher.Matcher
	Scheduler *scheduler.Scheduler
	Debug     *debugshot.Recorder // 可为 nil
	Pointer   Pointer             // 可为 nil
	Telemetry Telemetry           // 可为 nil
	Overlay   *overlay.Queue      // 可为 nil

	Scale              int
	TimeShift          int
	AbnormalGoldRounds []string
}

// Arena 每个周期把各个区域的识别结果组装成一份快照
type Arena struct {
	layout    global.Layout
	screen    Screen
	ocr       *recognize.Service
	occupancy *occupancy.Detector
	champions *matcher.Matcher
	items     *matcher.Matcher
	sched     *scheduler.Scheduler
	debug     *debugshot.Recorder
	pointer   Pointer
	telemetry Telemetry
	overlay   *overlay.Queue

	scale              int
	timeShift          int
	abnormalGoldRounds []string

	now func() time.Time
	log *slog.Logger
}

// NewArena 创建组装器
func NewArena(d Deps) *Arena {
	scale := d.Scale
	if scale < 1 {
		scale = 1
	}
	sched := d.Scheduler
	if sched == nil {
		sched = scheduler.New(0, 0)
	}
	return &Arena{
		layout:             d.Layout,
		screen:             d.Screen,
		ocr:                d.OCR,
		occupancy:          d.Occupancy,
		champions:          d.Champions,
		items:              d.Items,
		sched:              sched,
		debug:              d.Debug,
		pointer:            d.Pointer,
		telemetry:          d.Telemetry,
		overlay:            d.Overlay,
		scale:              scale,
		timeShift:          d.TimeShift,
		abnormalGoldRounds: d.AbnormalGoldRounds,
		now:                time.Now,
		log:                logging.New("arena"),
	}
}

// Snapshot 依次读取所有字段，单个字段失败时使用默认值
func (a *Arena) Snapshot(ctx context.Context) model.GameStateSnapshot {
	start := a.now()
	snap := model.GameStateSnapshot{CapturedAt: start}

	snap.Level = a.Level(ctx)
	snap.Alive = a.Alive(ctx)
	snap.Gold = a.Gold()
	snap.Round, snap.RoundTime = a.roundAndTime()
	if slices.Contains(a.abnormalGoldRounds, snap.Round) {
		snap.AbnormalGold = a.AbnormalGold()
	}
	snap.Health = a.HP()
	snap.Shop = a.Shop()
	snap.Items = a.Items()
	snap.Bench = a.BenchOccupied()
	snap.EmptySlot = occupancy.FirstEmpty(snap.Bench)
	snap.Abnormal = a.Abnormal()

	a.publish(snap.Shop)
	snap.Duration = a.now().Sub(start)
	a.log.Debug("snapshot assembled",
		"round", snap.Round, "gold", snap.Gold, "empty_slot", snap.EmptySlot, "duration", snap.Duration)
	return snap
}

// Level 当前等级，遥测不可用时为 1
func (a *Arena) Level(ctx context.Context) int {
	if a.telemetry == nil {
		return model.DefaultLevel
	}
	return a.telemetry.Level(ctx)
}

// Alive 存活标记，遥测不可用时为 1
func (a *Arena) Alive(ctx context.Context) int {
	if a.telemetry == nil {
		return model.DefaultAlive
	}
	return a.telemetry.Alive(ctx)
}

// Gold 当前金币，识别失败时为 0 并留下调试截图
func (a *Arena) Gold() int {
	return a.readInt(a.layout.Gold, "gold", model.DefaultGold)
}

// AbnormalGold 特殊回合下方的金币位置
func (a *Arena) AbnormalGold() int {
	return a.readInt(a.layout.AbnormalGold, "abnormal_gold", model.DefaultGold)
}

// Round 回合文字，例如 "3-2"
func (a *Arena) Round() string {
	return strings.TrimSpace(a.ocr.Text(a.layout.Round, a.scale).Text)
}

// RoundTime 回合剩余秒数，识别失败时为 -1
func (a *Arena) RoundTime() int {
	_, seconds := a.roundAndTime()
	return seconds
}

// roundAndTime 先读回合，2 到 7 阶段的计时区域右移
func (a *Arena) roundAndTime() (string, int) {
	round := a.Round()
	region := a.layout.RoundTime
	if laterStage(round) {
		region = region.Shift(a.timeShift, 0)
	}
	return round, a.readInt(region, "round_time", model.DefaultRoundTime)
}

// Abnormal 特殊事件文字，失败时为空
func (a *Arena) Abnormal() string {
	return strings.TrimSpace(a.ocr.Text(a.layout.Abnormal, a.scale).Text)
}

// HP 截取整条血量栏一次，再并行识别每一名玩家
func (a *Arena) HP() []model.HealthEntry {
	entries := make([]model.HealthEntry, 0, len(a.layout.Health))
	strip, err := a.screen.Capture(a.layout.HealthStrip)
	if err != nil {
		a.log.Warn("health strip capture failed", "error", err)
		return entries
	}

	type reading struct {
		hp int
		ok bool
	}
	readings := scheduler.Run(a.sched, a.layout.Health, func(_ int, region model.ScreenRegion) reading {
		res := a.ocr.TwoPass(util.Crop(strip, a.layout.HealthStrip, region))
		hp, ok := parseHealth(res.Text)
		if !ok && res.Text != "" {
			a.debug.Capture("little_hero_health", region, res.Text)
		}
		return reading{hp: hp, ok: ok}
	})
	for i, r := range readings {
		if r.ok {
			entries = append(entries, model.HealthEntry{Rank: i + 1, Health: r.hp})
		}
	}
	return entries
}

// Shop 商店五个位置的英雄名，未匹配的位置为空
func (a *Arena) Shop() []model.ShopEntry {
	entries := make([]model.ShopEntry, len(a.layout.Shop))
	for i := range entries {
		entries[i].Slot = i
	}
	strip, err := a.screen.Capture(a.layout.ShopStrip)
	if err != nil {
		a.log.Warn("shop strip capture failed", "error", err)
		return entries
	}

	names := scheduler.Run(a.sched, a.layout.Shop, func(i int, region model.ScreenRegion) string {
		res := a.ocr.TwoPass(util.Crop(strip, a.layout.ShopStrip, region))
		name := a.champions.Match(res.Text)
		if name == "" && res.OK() {
			a.log.Debug("no champion match", "slot", i, "text", res.Text)
		}
		return name
	})
	for i, name := range names {
		entries[i].Name = name
	}
	return entries
}

// Items 逐个悬停装备栏读取名称，遇到第一个未识别的位置即停止
func (a *Arena) Items() []string {
	items := make([]string, len(a.layout.Items))
	defer a.move(a.layout.DefaultLocation)

	for i, slot := range a.layout.Items {
		a.move(slot.Hover.Center())
		res := a.ocr.Text(slot.Text, a.scale)
		name := a.items.Match(res.Text)
		if name == "" {
			break
		}
		items[i] = name
	}
	return items
}

// BenchOccupied 备战席每个位置是否有棋子
func (a *Arena) BenchOccupied() []bool {
	return scheduler.Run(a.sched, a.layout.Bench, func(_ int, region model.ScreenRegion) bool {
		return a.occupancy.Occupied(region)
	})
}

// EmptySlot 第一个空的备战席位置，全满时为 -1
func (a *Arena) EmptySlot() int {
	return occupancy.FirstEmpty(a.BenchOccupied())
}

func (a *Arena) readInt(region model.ScreenRegion, label string, fallback int) int {
	res := a.ocr.Text(region, a.scale)
	n, err := strconv.Atoi(strings.TrimSpace(res.Text))
	if err != nil {
		a.debug.Capture(label, region, res.Text)
		return fallback
	}
	return n
}

func (a *Arena) move(p image.Point) {
	if a.pointer == nil {
		return
	}
	a.pointer.Move(p.X, p.Y)
}

// publish 清除旧标注后在商店位置上方显示识别结果
func (a *Arena) publish(shop []model.ShopEntry) {
	if a.overlay == nil {
		return
	}
	a.overlay.Clear()
	labels := make([]overlay.Label, 0, len(shop))
	for _, e := range shop {
		if e.Name == "" || e.Slot >= len(a.layout.Shop) {
			continue
		}
		labels = append(labels, overlay.Label{Text: e.Name, Position: a.layout.Shop[e.Slot].Center()})
	}
	a.overlay.Show(labels)
}

// @function: laterStage
// @description: 回合是否处于 2 到 7 阶段
// @param: round string 例如 "3-2"
// @return: bool
func laterStage(round string) bool {
	round = strings.TrimSpace(round)
	if len(round) < 2 || round[1] != '-' {
		return false
	}
	return round[0] >= '2' && round[0] <= '7'
}

// @function: parseHealth
// @description: 校验血量文字，1 到 3 位数字、无前导零、不超过 100
// @param: text string
// @return: int, bool
func parseHealth(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > 3 {
		return 0, false
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	if len(text) > 1 && text[0] == '0' {
		return 0, false
	}
	hp, err := strconv.Atoi(text)
	if err != nil || hp > 100 {
		return 0, false
	}
	return hp, true
}

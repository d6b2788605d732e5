package global

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	_const "arena_client/internal/const"
)

// Config 客户端配置，对应 config.yaml
type Config struct {
	Interval  time.Duration   `json:"interval" yaml:"interval"`
	Log       LogConfig       `json:"log" yaml:"log"`
	OCR       OCRConfig       `json:"ocr" yaml:"ocr"`
	Matcher   MatcherConfig   `json:"matcher" yaml:"matcher"`
	Occupancy OccupancyConfig `json:"occupancy" yaml:"occupancy"`
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`
	Debug     DebugConfig     `json:"debug" yaml:"debug"`
	Telemetry TelemetryConfig `json:"telemetry" yaml:"telemetry"`
	Round     RoundConfig     `json:"round" yaml:"round"`
	HTTP      HTTPConfig      `json:"http" yaml:"http"`
	Assets    AssetsConfig    `json:"assets" yaml:"assets"`
	Layout    *Layout         `json:"-" yaml:"layout"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // text 或 json
}

// OCR 后端类型
const (
	OCRBackendTesseract = "tesseract"
	OCRBackendService   = "service"
)

// OCRConfig 文字识别配置
type OCRConfig struct {
	Backend       string        `json:"backend" yaml:"backend"`
	Language      string        `json:"language" yaml:"language"`
	Whitelist     string        `json:"whitelist" yaml:"whitelist"`
	Scale         int           `json:"scale" yaml:"scale"`
	FallbackScale int           `json:"fallback_scale" yaml:"fallback_scale"`
	ServiceHost   string        `json:"service_host" yaml:"service_host"`
	ServicePort   int           `json:"service_port" yaml:"service_port"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
}

// MatcherConfig 名称匹配阈值，经验值
type MatcherConfig struct {
	ChampionThreshold float64 `json:"champion_threshold" yaml:"champion_threshold"`
	ItemThreshold     float64 `json:"item_threshold" yaml:"item_threshold"`
	ItemContainment   bool    `json:"item_containment" yaml:"item_containment"`
}

// OccupancyConfig 血条颜色检测配置
type OccupancyConfig struct {
	Color     [3]uint8 `json:"color" yaml:"color"`
	Tolerance int      `json:"tolerance" yaml:"tolerance"`
	MinRun    int      `json:"min_run" yaml:"min_run"`
}

// SchedulerConfig 并行提取配置
type SchedulerConfig struct {
	Stagger time.Duration `json:"stagger" yaml:"stagger"`
	Workers int           `json:"workers" yaml:"workers"` // 0 表示不限制
}

// DebugConfig 调试截图配置
type DebugConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	Dir            string `json:"dir" yaml:"dir"`
	Margin         int    `json:"margin" yaml:"margin"`
	DedupeDistance int    `json:"dedupe_distance" yaml:"dedupe_distance"` // 小于 0 关闭去重
}

// TelemetryConfig 本地客户端遥测配置
type TelemetryConfig struct {
	URL          string        `json:"url" yaml:"url"`
	LevelTimeout time.Duration `json:"level_timeout" yaml:"level_timeout"`
	AliveTimeout time.Duration `json:"alive_timeout" yaml:"alive_timeout"`
}

// RoundConfig 回合相关配置
type RoundConfig struct {
	TimeShift int `json:"time_shift" yaml:"time_shift"`
	// 只在这些回合读取异常金币
	AbnormalGoldRounds []string `json:"abnormal_gold_rounds" yaml:"abnormal_gold_rounds"`
}

// HTTPConfig 状态服务配置
type HTTPConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// AssetsConfig 静态资源配置
type AssetsConfig struct {
	VocabularyFile string `json:"vocabulary_file" yaml:"vocabulary_file"`
}

var (
	ArenaConfig Config
)

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Interval: _const.DefaultCycleInterval,
		Log:      LogConfig{Level: "info", Format: "text"},
		OCR: OCRConfig{
			Backend:       OCRBackendTesseract,
			Language:      "eng",
			Scale:         _const.DefaultOCRScale,
			FallbackScale: _const.DefaultFallbackScale,
			ServiceHost:   OCRServiceHost,
			ServicePort:   OCRServicePort,
			Timeout:       _const.OCRServiceAPITimeout,
		},
		Matcher: MatcherConfig{
			ChampionThreshold: 0.7,
			ItemThreshold:     0.85,
			ItemContainment:   true,
		},
		Occupancy: OccupancyConfig{
			Color:     [3]uint8{0, 255, 18},
			Tolerance: 2,
			MinRun:    5,
		},
		Scheduler: SchedulerConfig{Stagger: _const.CaptureStagger},
		Debug: DebugConfig{
			Enabled:        true,
			Dir:            "debug",
			Margin:         _const.DefaultDebugMargin,
			DedupeDistance: -1,
		},
		Telemetry: TelemetryConfig{
			URL:          TelemetryURL,
			LevelTimeout: _const.TelemetryLevelTimeout,
			AliveTimeout: _const.TelemetryAliveTimeout,
		},
		Round: RoundConfig{
			TimeShift:          _const.DefaultRoundTimeShift,
			AbnormalGoldRounds: []string{"4-6"},
		},
		HTTP: HTTPConfig{Addr: ":8090"},
	}
}

// LoadConfig 在默认配置基础上解析 yaml
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate 检查配置取值范围
func (c Config) Validate() error {
	if c.Matcher.ChampionThreshold < 0 || c.Matcher.ChampionThreshold > 1 {
		return fmt.Errorf("matcher.champion_threshold must be within [0,1], got %v", c.Matcher.ChampionThreshold)
	}
	if c.Matcher.ItemThreshold < 0 || c.Matcher.ItemThreshold > 1 {
		return fmt.Errorf("matcher.item_threshold must be within [0,1], got %v", c.Matcher.ItemThreshold)
	}
	if c.OCR.Scale < 1 || c.OCR.FallbackScale < 1 {
		return fmt.Errorf("ocr scale must be >= 1")
	}
	if c.OCR.Backend != OCRBackendTesseract && c.OCR.Backend != OCRBackendService {
		return fmt.Errorf("unknown ocr backend %q", c.OCR.Backend)
	}
	if c.Scheduler.Stagger < 0 {
		return fmt.Errorf("scheduler.stagger must not be negative")
	}
	if c.Occupancy.MinRun < 1 {
		return fmt.Errorf("occupancy.min_run must be >= 1")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if c.Layout != nil {
		if err := c.Layout.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ScreenLayout 返回配置的布局，未配置时使用默认布局
func (c Config) ScreenLayout() Layout {
	if c.Layout != nil {
		return *c.Layout
	}
	return DefaultLayout()
}

package _const

import "time"

// 时间相关常量
const (
	// 提取周期
	DefaultCycleInterval = 2 * time.Second       // 默认提取周期间隔
	CaptureStagger       = 50 * time.Millisecond // 并行截图错开启动间隔，减少截屏资源争用

	// 本地客户端遥测接口超时
	TelemetryLevelTimeout = 10 * time.Second // 获取等级超时
	TelemetryAliveTimeout = 20 * time.Second // 获取存活信息超时

	// OCR 服务相关时间常量
	OCRServiceHealthCheckTimeout = 3 * time.Second  // OCR 服务健康检查超时时间
	OCRServiceAPITimeout         = 10 * time.Second // OCR 服务 API 请求超时时间

	// HTTP 状态服务
	HTTPShutdownTimeout = 5 * time.Second // 关闭超时
)

// 识别相关常量
const (
	DefaultOCRScale       = 3  // 默认放大倍数
	DefaultFallbackScale  = 3  // 两段识别第二次的放大倍数
	DefaultDebugMargin    = 50 // 调试截图四周扩展像素
	DefaultRoundTimeShift = 50 // 2-x 及以后回合剩余时间区域右移像素
	OverlayQueueSize      = 16 // 覆盖层消息队列长度
)

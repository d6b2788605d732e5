package request

import "encoding/json"

// OCR 服务返回码
const (
	OcrCodeSuccess = 100 // 识别成功
	OcrCodeNoText  = 101 // 图片中无文本
)

// OcrRequest OCR 服务请求结构
type OcrRequest struct {
	Base64  string                 `json:"base64"`
	Options map[string]interface{} `json:"options"`
}

// NewOcrRequest 构造 dict 格式的识别请求
func NewOcrRequest(base64Data string) OcrRequest {
	return OcrRequest{
		Base64: base64Data,
		Options: map[string]interface{}{
			"data": map[string]interface{}{
				"format": "dict",
			},
		},
	}
}

// OcrItem represents a single OCR recognition item
type OcrItem struct {
	Text  string      `json:"text"`
	Score float64     `json:"score"`
	Box   [][]float64 `json:"box"` // 四个顶点坐标 [[x1,y1], [x2,y2], [x3,y3], [x4,y4]]
}

// OcrResponse OCR 服务响应
// code 为 100 时 data 是识别项数组，否则是错误信息字符串
type OcrResponse struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
}

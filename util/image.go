package util

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"arena_client/model/request"
)

// OCRService 本地 PaddleOCR HTTP 服务识别后端
type OCRService struct {
	client  *http.Client
	baseURL string
}

// NewOCRService 创建 OCR 服务客户端
func NewOCRService(host string, port int, timeout time.Duration) *OCRService {
	return &OCRService{
		client:  &http.Client{Timeout: timeout},
		baseURL: fmt.Sprintf("http://%s:%d", host, port),
	}
}

// ReadText
// @function: ReadText
// @description: 识别图片中的所有文本行，按服务返回顺序排列；图片中无文本时返回空切片
// @param: img image.Image 待识别图片
// @return: []string, error
func (s *OCRService) ReadText(img image.Image) ([]string, error) {
	// 转为灰度后编码为 PNG
	var buf bytes.Buffer
	if err := png.Encode(&buf, imaging.Grayscale(img)); err != nil {
		return nil, fmt.Errorf("编码图片失败: %w", err)
	}

	jsonData, err := json.Marshal(request.NewOcrRequest(base64.StdEncoding.EncodeToString(buf.Bytes())))
	if err != nil {
		return nil, fmt.Errorf("JSON编码失败: %w", err)
	}

	resp, err := s.client.Post(s.baseURL+"/api/ocr", "application/json", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("发送请求失败: %w", err)
	}
	defer resp.Body.Close()

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	var ocrResult request.OcrResponse
	if err = json.Unmarshal(responseData, &ocrResult); err != nil {
		return nil, fmt.Errorf("解析响应JSON失败: %w", err)
	}

	switch ocrResult.Code {
	case request.OcrCodeSuccess:
		var items []request.OcrItem
		if err = json.Unmarshal(ocrResult.Data, &items); err != nil {
			return nil, fmt.Errorf("OCR响应data格式错误: %w", err)
		}
		texts := make([]string, 0, len(items))
		for _, item := range items {
			if text := strings.TrimSpace(item.Text); text != "" {
				texts = append(texts, text)
			}
		}
		return texts, nil
	case request.OcrCodeNoText:
		return nil, nil
	default:
		var message string
		_ = json.Unmarshal(ocrResult.Data, &message)
		return nil, fmt.Errorf("OCR识别失败，错误代码: %d，错误信息: %s", ocrResult.Code, message)
	}
}

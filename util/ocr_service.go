package util

import (
	"io"
	"net/http"
	"strings"

	_const "arena_client/internal/const"
)

// Ping 检查 OCR 服务是否运行
func (s *OCRService) Ping() bool {
	client := &http.Client{Timeout: _const.OCRServiceHealthCheckTimeout}
	resp, err := client.Get(s.baseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// Status 获取 OCR 服务状态
func (s *OCRService) Status() map[string]interface{} {
	running := s.Ping()
	status := map[string]interface{}{
		"endpoint":        s.baseURL,
		"service_running": running,
	}

	// 尝试获取服务详细信息
	if running {
		client := &http.Client{Timeout: _const.OCRServiceHealthCheckTimeout}
		resp, err := client.Get(s.baseURL + "/")
		if err == nil {
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			if err == nil {
				status["service_info"] = strings.TrimSpace(string(body))
			}
		}
	}

	return status
}

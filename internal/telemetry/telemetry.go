// Package telemetry 读取本地游戏客户端的 liveclientdata 接口
//
// 接口不可用或字段缺失时返回固定的回退值，不重试。
package telemetry

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"arena_client/internal/logging"
	"arena_client/model"
	"arena_client/model/request"
)

// ErrMissingField 响应中缺少需要的字段
var ErrMissingField = errors.New("telemetry: missing field")

// Client 本地客户端遥测
type Client struct {
	url          string
	http         *http.Client
	levelTimeout time.Duration
	aliveTimeout time.Duration
	log          *slog.Logger
}

// NewClient 创建遥测客户端，本地接口使用自签名证书，不校验
func NewClient(url string, levelTimeout, aliveTimeout time.Duration) *Client {
	return &Client{
		url: url,
		http: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		levelTimeout: levelTimeout,
		aliveTimeout: aliveTimeout,
		log:          logging.New("telemetry"),
	}
}

// AllGameData 请求完整对局数据
func (c *Client) AllGameData(ctx context.Context, timeout time.Duration) (*request.AllGameData, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telemetry request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telemetry status %d", resp.StatusCode)
	}

	var data request.AllGameData
	if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode telemetry: %w", err)
	}
	return &data, nil
}

// Level 召唤师等级，失败时返回 1
func (c *Client) Level(ctx context.Context) int {
	level, err := c.level(ctx)
	if err != nil {
		c.log.Debug("level unavailable", "error", err)
		return model.DefaultLevel
	}
	return level
}

func (c *Client) level(ctx context.Context) (int, error) {
	data, err := c.AllGameData(ctx, c.levelTimeout)
	if err != nil {
		return 0, err
	}
	if data.ActivePlayer == nil || data.ActivePlayer.Level == nil {
		return 0, fmt.Errorf("%w: activePlayer.level", ErrMissingField)
	}
	return *data.ActivePlayer.Level, nil
}

// Alive 当前召唤师的死亡计数，失败时返回 1
func (c *Client) Alive(ctx context.Context) int {
	deaths, err := c.deaths(ctx)
	if err != nil {
		c.log.Debug("alive unavailable", "error", err)
		return model.DefaultAlive
	}
	return deaths
}

func (c *Client) deaths(ctx context.Context) (int, error) {
	data, err := c.AllGameData(ctx, c.aliveTimeout)
	if err != nil {
		return 0, err
	}
	if data.ActivePlayer == nil || data.ActivePlayer.RiotID == "" {
		return 0, fmt.Errorf("%w: activePlayer.riotId", ErrMissingField)
	}
	for _, p := range data.AllPlayers {
		if p.RiotID != data.ActivePlayer.RiotID {
			continue
		}
		if p.Scores == nil || p.Scores.Deaths == nil {
			return 0, fmt.Errorf("%w: scores.deaths", ErrMissingField)
		}
		return *p.Scores.Deaths, nil
	}
	return 0, fmt.Errorf("%w: player %s", ErrMissingField, data.ActivePlayer.RiotID)
}

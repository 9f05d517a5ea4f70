package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/config"
)

// ── 外部表格存储客户端 ──────────────────────────────────────
//
// 职责：封装远程表格存储的三种行/格原语：
//   - ListValues  整表读取（含表头行）
//   - AppendRow   末尾追加一行
//   - UpdateCell  按行列号更新单个单元格（1-based）
//
// 本服务不实现任何本地持久化，所有读写都经由这三个调用。
// 存储端不提供事务或锁，跨调用的一致性由上层契约（先查后写）约定。
// ─────────────────────────────────────────────────────────────

// ErrStoreUnavailable 外部表格存储不可用（网络失败或非 2xx 响应）
// 调用方必须向用户如实上报，绝不能让失败的保存看起来像成功
var ErrStoreUnavailable = errors.New("外部表格存储不可用")

// Client 表格存储 HTTP 客户端
type Client struct {
	baseURL string
	key     string
	token   string
	httpc   *http.Client
	logger  *zap.Logger
}

// NewClient 创建表格存储客户端
func NewClient(cfg *config.SheetsConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		key:     cfg.SpreadsheetKey,
		token:   cfg.Token,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// valuesPayload 整表读取响应 / 追加行请求体
type valuesPayload struct {
	Values [][]string `json:"values"`
}

// cellPayload 单元格更新请求体
type cellPayload struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value string `json:"value"`
}

// ListValues 读取工作表全部内容，首行为表头
func (c *Client) ListValues(ctx context.Context, worksheet string) ([][]string, error) {
	var payload valuesPayload
	if err := c.do(ctx, http.MethodGet, c.worksheetURL(worksheet, "values"), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Values, nil
}

// AppendRow 在工作表末尾追加一行
func (c *Client) AppendRow(ctx context.Context, worksheet string, row []string) error {
	body := valuesPayload{Values: [][]string{row}}
	return c.do(ctx, http.MethodPost, c.worksheetURL(worksheet, "values:append"), body, nil)
}

// UpdateCell 更新指定单元格，行列号均为 1-based（行号含表头行）
func (c *Client) UpdateCell(ctx context.Context, worksheet string, row, col int, value string) error {
	body := cellPayload{Row: row, Col: col, Value: value}
	return c.do(ctx, http.MethodPut, c.worksheetURL(worksheet, "cell"), body, nil)
}

// worksheetURL 拼接工作表操作的完整 URL
func (c *Client) worksheetURL(worksheet, op string) string {
	return fmt.Sprintf("%s/v1/spreadsheets/%s/worksheets/%s/%s",
		c.baseURL, url.PathEscape(c.key), url.PathEscape(worksheet), op)
}

// do 发起请求并解析响应；网络错误与非 2xx 统一收敛为 ErrStoreUnavailable
func (c *Client) do(ctx context.Context, method, rawURL string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("序列化请求体失败: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("构造请求失败: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Error("表格存储请求失败",
			zap.String("method", method),
			zap.String("url", rawURL),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 响应体截断后写入日志，便于定位存储端错误
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("表格存储返回异常状态",
			zap.String("method", method),
			zap.String("url", rawURL),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet),
		)
		return fmt.Errorf("%w: 状态码 %d", ErrStoreUnavailable, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: 解析响应失败: %v", ErrStoreUnavailable, err)
		}
	}
	return nil
}

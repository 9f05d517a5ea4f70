package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/service"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/sheets"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器（仅管理员）
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSummary 导出月总表为 Excel
// GET /api/v1/export/summary?year=2024&month=3
func (h *ExportHandler) ExportSummary(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportMonthSummary(c.Request.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPeriod):
			response.BadRequest(c, 15001, "年月参数无效")
		case errors.Is(err, sheets.ErrStoreUnavailable):
			response.BadGateway(c, 12001, "外部表格存储暂时不可用，请稍后再试")
		default:
			response.InternalError(c)
		}
		return
	}

	// 中文文件名按 RFC 5987 编码
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

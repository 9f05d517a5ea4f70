package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/service"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/sheets"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/pkg/response"
)

// SummaryHandler 月总表模块 HTTP 处理器（仅管理员）
type SummaryHandler struct {
	summarySvc service.SummaryService
}

// NewSummaryHandler 创建 SummaryHandler
func NewSummaryHandler(summarySvc service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summarySvc: summarySvc}
}

// GetSummary 获取月总表
// GET /api/v1/summary?year=2024&month=3
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	result, err := h.summarySvc.GetMonthSummary(c.Request.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPeriod):
			response.BadRequest(c, 14001, "年月参数无效")
		case errors.Is(err, sheets.ErrStoreUnavailable):
			response.BadGateway(c, 12001, "外部表格存储暂时不可用，请稍后再试")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

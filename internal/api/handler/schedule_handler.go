package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/dto"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/service"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/sheets"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/pkg/response"
)

// ScheduleHandler 个人排班模块 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
	calendarSvc service.CalendarService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService, calendarSvc service.CalendarService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc, calendarSvc: calendarSvc}
}

// parseYearMonth 解析 year / month 查询参数；失败时写入 400 并返回 false
func parseYearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.BadRequest(c, 13001, "year 参数无效")
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		response.BadRequest(c, 13001, "month 参数无效")
		return 0, 0, false
	}
	return year, month, true
}

// GetMySchedule 获取我的月排班
// GET /api/v1/schedules/my?year=2024&month=3
func (h *ScheduleHandler) GetMySchedule(c *gin.Context) {
	sc, ok := MustGetSession(c)
	if !ok {
		return
	}
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	result, err := h.scheduleSvc.GetMyMonth(c.Request.Context(), sc.Username, year, month)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// SaveMySchedule 保存我的排班编辑
// PUT /api/v1/schedules/my
func (h *ScheduleHandler) SaveMySchedule(c *gin.Context) {
	sc, ok := MustGetSession(c)
	if !ok {
		return
	}

	var req dto.SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13001, "参数校验失败")
		return
	}

	result, err := h.scheduleSvc.SaveMySchedule(c.Request.Context(), sc.Username, &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// ExportMyCalendar 导出我的月排班为 iCalendar
// GET /api/v1/schedules/my/ics?year=2024&month=3
func (h *ScheduleHandler) ExportMyCalendar(c *gin.Context) {
	sc, ok := MustGetSession(c)
	if !ok {
		return
	}
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	buf, filename, err := h.calendarSvc.ExportMonthCalendar(c.Request.Context(), sc.Username, year, month)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	// 中文文件名按 RFC 5987 编码
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

// ShiftOptions 班别选项列表
// GET /api/v1/shifts/options
func (h *ScheduleHandler) ShiftOptions(c *gin.Context) {
	options := make([]dto.ShiftOption, 0, len(model.ShiftOptions))
	for _, v := range model.ShiftOptions {
		options = append(options, dto.ShiftOption{Value: v, Class: v.Classify()})
	}
	response.OK(c, gin.H{"options": options})
}

// handleScheduleError 排班模块统一错误映射
func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPeriod):
		response.BadRequest(c, 13002, "年月参数无效")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 13003, "日期格式无效")
	case errors.Is(err, service.ErrInvalidShiftValue):
		response.BadRequest(c, 13004, "班别不在允许的选项内")
	case errors.Is(err, sheets.ErrStoreUnavailable):
		// 保存失败必须如实上报，绝不能让用户误以为已保存
		response.BadGateway(c, 12001, "外部表格存储暂时不可用，保存未生效")
	default:
		response.InternalError(c)
	}
}

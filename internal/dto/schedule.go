package dto

import "github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"

// ── 排班模块 DTO ──

// DayShift 单日排班（月视图中每天一项，缺记录的日期已默认为休）
type DayShift struct {
	Date    string               `json:"date"` // YYYY-MM-DD
	Day     int                  `json:"day"`
	Weekday string               `json:"weekday"` // 一 ~ 日
	Shift   model.ShiftValue     `json:"shift"`
	Class   model.Classification `json:"class"`
}

// MonthScheduleResponse 我的月排班响应
type MonthScheduleResponse struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Days  []DayShift `json:"days"`
}

// ShiftEntry 一条排班编辑
type ShiftEntry struct {
	Date  string           `json:"date"  binding:"required"`
	Shift model.ShiftValue `json:"shift" binding:"required"`
}

// SaveScheduleRequest 保存排班请求
type SaveScheduleRequest struct {
	Entries []ShiftEntry `json:"entries" binding:"required,min=1,dive"`
}

// SaveScheduleResponse 保存排班确认
type SaveScheduleResponse struct {
	Saved   int `json:"saved"`
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// ShiftOption 班别选项（含语义分类，供前端配色）
type ShiftOption struct {
	Value model.ShiftValue     `json:"value"`
	Class model.Classification `json:"class"`
}

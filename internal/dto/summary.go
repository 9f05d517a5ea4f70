package dto

import "github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"

// ── 总表模块 DTO ──
//
// 总表是 用户 × 日 的矩阵：Days 是列定义（含星期表头行），
// Rows 每行以职称 + 姓名开头，单元格同时携带班别与语义分类。

// SummaryDay 总表的一列（某月的一天）
type SummaryDay struct {
	Day     int    `json:"day"`
	Date    string `json:"date"`    // YYYY-MM-DD
	Weekday string `json:"weekday"` // 一 ~ 日（周一为一周之始）
}

// SummaryCell 总表单元格
type SummaryCell struct {
	Date  string               `json:"date"`
	Shift model.ShiftValue     `json:"shift"`
	Class model.Classification `json:"class"`
}

// SummaryRow 总表一行（一个用户）
type SummaryRow struct {
	Role        string        `json:"role"`
	DisplayName string        `json:"display_name"`
	Username    string        `json:"username"`
	Cells       []SummaryCell `json:"cells"`
}

// SummaryResponse 月总表响应
type SummaryResponse struct {
	Year  int          `json:"year"`
	Month int          `json:"month"`
	Days  []SummaryDay `json:"days"`
	Rows  []SummaryRow `json:"rows"`
}

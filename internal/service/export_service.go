package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/repository"
)

// ErrExportGenerateFail 生成 Excel 文件失败
var ErrExportGenerateFail = errors.New("生成 Excel 文件失败")

// ExportService 导出业务接口
//
// 设计说明：
//   - 月总表导出为 Excel (.xlsx)，布局与管理员页面的总表一致
//   - 单元格按语义分类着色：全天 绿 / 休 红 / 其余班别 黄
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportMonthSummary 导出月总表为 Excel
	ExportMonthSummary(ctx context.Context, year, month int) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// 单元格填充色（沿用总表页面的配色）
var classFillColors = map[model.Classification]string{
	model.ClassFull:    "#d4edda",
	model.ClassOff:     "#f8d7da",
	model.ClassPartial: "#fff9db",
}

func (s *exportService) ExportMonthSummary(ctx context.Context, year, month int) (*bytes.Buffer, string, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, "", err
	}

	// 1. 组装总表
	users, err := s.repo.User.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}
	records, err := s.repo.Shift.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}
	grid := BuildGrid(year, month, users, records)

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "排班总表"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽：职称 / 姓名列宽，日期列窄
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 14)
	lastCol := colName(2 + len(grid.Days))
	if len(grid.Days) > 0 {
		f.SetColWidth(sheetName, "C", lastCol, 6)
	}

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	classStyles := make(map[model.Classification]int, len(classFillColors))
	for class, color := range classFillColors {
		style, _ := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		})
		classStyles[class] = style
	}

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%d年%d月 排班总表", year, month))
	f.MergeCell(sheetName, "A1", cell(lastCol, 1))
	f.SetCellStyle(sheetName, "A1", cell(lastCol, 1), headerStyle)

	// 表头：职称 / 姓名 / 日号
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "职称")
	f.SetCellValue(sheetName, cell("B", row), "姓名")
	for i, day := range grid.Days {
		f.SetCellValue(sheetName, cell(colName(3+i), row), day.Day)
	}
	f.SetCellStyle(sheetName, cell("A", row), cell(lastCol, row), headerStyle)

	// 星期行
	row = 3
	f.SetCellValue(sheetName, cell("B", row), "星期")
	for i, day := range grid.Days {
		f.SetCellValue(sheetName, cell(colName(3+i), row), day.Weekday)
	}

	// 数据行：每个用户一行，单元格按分类着色
	row = 4
	for _, userRow := range grid.Rows {
		f.SetCellValue(sheetName, cell("A", row), userRow.Role)
		f.SetCellValue(sheetName, cell("B", row), userRow.DisplayName)
		for i, c := range userRow.Cells {
			ref := cell(colName(3+i), row)
			f.SetCellValue(sheetName, ref, string(c.Shift))
			if style, ok := classStyles[c.Class]; ok {
				f.SetCellStyle(sheetName, ref, ref, style)
			}
		}
		row++
	}

	// 3. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("排班总表_%d-%02d.xlsx", year, month)
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

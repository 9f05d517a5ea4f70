package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/dto"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/repository"
)

// SummaryService 月总表业务接口（管理员视图）
type SummaryService interface {
	GetMonthSummary(ctx context.Context, year, month int) (*dto.SummaryResponse, error)
}

type summaryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSummaryService 创建 SummaryService 实例
func NewSummaryService(repo *repository.Repository, logger *zap.Logger) SummaryService {
	return &summaryService{repo: repo, logger: logger}
}

func (s *summaryService) GetMonthSummary(ctx context.Context, year, month int) (*dto.SummaryResponse, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	users, err := s.repo.User.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.Shift.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return BuildGrid(year, month, users, records), nil
}

// BuildGrid 组装月总表
// 纯函数：(年月, 用户列表, 排班记录) → 矩阵，无副作用、幂等。
// 列为该月每一天（含星期表头），行为每个用户，缺记录的单元格默认为休。
func BuildGrid(year, month int, users []model.User, records []model.ShiftRecord) *dto.SummaryResponse {
	total := daysInMonth(year, month)

	days := make([]dto.SummaryDay, 0, total)
	for d := 1; d <= total; d++ {
		t := monthDate(year, month, d)
		days = append(days, dto.SummaryDay{
			Day:     d,
			Date:    isoDate(t),
			Weekday: weekdayLabel(t),
		})
	}

	// (username, date) → 班别；重复行以先出现者为准
	index := make(map[string]model.ShiftValue, len(records))
	for _, rec := range records {
		key := rec.User + "\x00" + rec.Date
		if _, exists := index[key]; !exists {
			index[key] = rec.Shift
		}
	}

	rows := make([]dto.SummaryRow, 0, len(users))
	for _, u := range users {
		row := dto.SummaryRow{
			Role:        u.Role,
			DisplayName: u.DisplayName,
			Username:    u.Username,
			Cells:       make([]dto.SummaryCell, 0, total),
		}
		for _, day := range days {
			shift, ok := index[u.Username+"\x00"+day.Date]
			if !ok {
				shift = model.ShiftOff
			}
			row.Cells = append(row.Cells, dto.SummaryCell{
				Date:  day.Date,
				Shift: shift,
				Class: shift.Classify(),
			})
		}
		rows = append(rows, row)
	}

	return &dto.SummaryResponse{Year: year, Month: month, Days: days, Rows: rows}
}

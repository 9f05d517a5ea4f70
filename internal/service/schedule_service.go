package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/dto"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/repository"
)

// ── 排班模块业务错误 ──

var (
	ErrInvalidShiftValue = errors.New("班别不在允许的选项内")
	ErrInvalidDate       = errors.New("日期格式无效")
)

// ScheduleService 个人排班业务接口
type ScheduleService interface {
	// GetMyMonth 获取某用户某月的排班；无记录的日期默认为休
	GetMyMonth(ctx context.Context, username string, year, month int) (*dto.MonthScheduleResponse, error)
	// SaveMySchedule 批量保存某用户的排班编辑
	// 逐条 Upsert，先全量校验再写入；存储失败如实上报，绝不伪装成成功
	SaveMySchedule(ctx context.Context, username string, req *dto.SaveScheduleRequest) (*dto.SaveScheduleResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

func (s *scheduleService) GetMyMonth(ctx context.Context, username string, year, month int) (*dto.MonthScheduleResponse, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	preset, err := s.repo.Shift.FetchMonth(ctx, username, year, month)
	if err != nil {
		return nil, err
	}

	total := daysInMonth(year, month)
	days := make([]dto.DayShift, 0, total)
	for d := 1; d <= total; d++ {
		t := monthDate(year, month, d)
		key := isoDate(t)

		// 适配层返回稀疏映射，缺失日期在这里默认为休
		shift, ok := preset[key]
		if !ok {
			shift = model.ShiftOff
		}

		days = append(days, dto.DayShift{
			Date:    key,
			Day:     d,
			Weekday: weekdayLabel(t),
			Shift:   shift,
			Class:   shift.Classify(),
		})
	}

	return &dto.MonthScheduleResponse{Year: year, Month: month, Days: days}, nil
}

func (s *scheduleService) SaveMySchedule(ctx context.Context, username string, req *dto.SaveScheduleRequest) (*dto.SaveScheduleResponse, error) {
	// 1. 先全量校验，任何一条非法都不落表
	for _, entry := range req.Entries {
		if _, err := time.Parse(model.DateLayout, entry.Date); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, entry.Date)
		}
		if !entry.Shift.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidShiftValue, entry.Shift)
		}
	}

	// 2. 按日期排序后逐条写入，写入顺序确定
	entries := make([]dto.ShiftEntry, len(req.Entries))
	copy(entries, req.Entries)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	resp := &dto.SaveScheduleResponse{}
	for _, entry := range entries {
		created, err := s.repo.Shift.Upsert(ctx, username, entry.Date, entry.Shift)
		if err != nil {
			s.logger.Error("保存排班失败",
				zap.String("username", username),
				zap.String("date", entry.Date),
				zap.Error(err),
			)
			return nil, err
		}
		resp.Saved++
		if created {
			resp.Created++
		} else {
			resp.Updated++
		}
	}

	s.logger.Info("排班已保存",
		zap.String("username", username),
		zap.Int("saved", resp.Saved),
		zap.Int("created", resp.Created),
	)
	return resp, nil
}

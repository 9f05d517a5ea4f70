package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/repository"
)

// CalendarService 个人排班的 iCalendar 订阅导出
//
// 每个非休日生成一条全天事件（RFC 5545），标题为班别；
// 休日不产生事件。供员工导入个人日历应用。
type CalendarService interface {
	ExportMonthCalendar(ctx context.Context, username string, year, month int) (*bytes.Buffer, string, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

func (s *calendarService) ExportMonthCalendar(ctx context.Context, username string, year, month int) (*bytes.Buffer, string, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, "", err
	}

	preset, err := s.repo.Shift.FetchMonth(ctx, username, year, month)
	if err != nil {
		return nil, "", err
	}

	// 按日期排序，输出顺序确定
	dates := make([]string, 0, len(preset))
	for date := range preset {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//PLAYHARD//排班系统//CN")

	now := time.Now()
	for _, date := range dates {
		shift := preset[date]
		if shift == model.ShiftOff {
			continue
		}
		t, err := time.Parse(model.DateLayout, date)
		if err != nil {
			// FetchMonth 已规范化日期，这里只是兜底
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%s@playhard", username, date))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(t)
		event.SetAllDayEndAt(t.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("班别：%s", shift))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("排班_%s_%d-%02d.ics", username, year, month)
	return buf, filename, nil
}

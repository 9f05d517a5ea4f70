package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/dto"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
)

func setupScheduleService(records []model.ShiftRecord) (ScheduleService, *mockShiftRepo) {
	repo, shiftRepo := newTestRepo(nil, records)
	return NewScheduleService(repo, zap.NewNop()), shiftRepo
}

func TestGetMyMonthDefaultsToOff(t *testing.T) {
	svc, _ := setupScheduleService([]model.ShiftRecord{
		{Date: "2024-03-05", Shift: model.ShiftMorning, User: "alice"},
	})

	resp, err := svc.GetMyMonth(context.Background(), "alice", 2024, 3)
	if err != nil {
		t.Fatalf("GetMyMonth 失败: %v", err)
	}
	if len(resp.Days) != 31 {
		t.Fatalf("2024 年 3 月应有 31 天，实际 %d", len(resp.Days))
	}

	for _, day := range resp.Days {
		switch day.Date {
		case "2024-03-05":
			if day.Shift != model.ShiftMorning || day.Class != model.ClassPartial {
				t.Errorf("3 月 5 日应为 早/partial，实际 %q/%q", day.Shift, day.Class)
			}
		default:
			if day.Shift != model.ShiftOff || day.Class != model.ClassOff {
				t.Errorf("%s 应默认为 休/off，实际 %q/%q", day.Date, day.Shift, day.Class)
			}
		}
	}
}

func TestGetMyMonthWeekdayAlignment(t *testing.T) {
	svc, _ := setupScheduleService(nil)

	// 2024-03-01 是周五
	resp, err := svc.GetMyMonth(context.Background(), "alice", 2024, 3)
	if err != nil {
		t.Fatalf("GetMyMonth 失败: %v", err)
	}
	if resp.Days[0].Weekday != "五" {
		t.Errorf("2024-03-01 应为 五，实际 %q", resp.Days[0].Weekday)
	}
	// 2024-03-04 是周一
	if resp.Days[3].Weekday != "一" {
		t.Errorf("2024-03-04 应为 一，实际 %q", resp.Days[3].Weekday)
	}
}

func TestGetMyMonthInvalidPeriod(t *testing.T) {
	svc, _ := setupScheduleService(nil)

	if _, err := svc.GetMyMonth(context.Background(), "alice", 2024, 13); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("月份 13 应返回 ErrInvalidPeriod，实际 %v", err)
	}
	if _, err := svc.GetMyMonth(context.Background(), "alice", 1999, 1); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("年份 1999 应返回 ErrInvalidPeriod，实际 %v", err)
	}
}

func TestSaveThenFetchRoundTrip(t *testing.T) {
	svc, _ := setupScheduleService(nil)

	_, err := svc.SaveMySchedule(context.Background(), "alice", &dto.SaveScheduleRequest{
		Entries: []dto.ShiftEntry{
			{Date: "2024-03-10", Shift: model.ShiftAfternoonEvening},
		},
	})
	if err != nil {
		t.Fatalf("保存失败: %v", err)
	}

	resp, err := svc.GetMyMonth(context.Background(), "alice", 2024, 3)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if resp.Days[9].Shift != model.ShiftAfternoonEvening {
		t.Errorf("写后读不一致: %q", resp.Days[9].Shift)
	}
}

func TestSaveCountsCreatedAndUpdated(t *testing.T) {
	svc, _ := setupScheduleService([]model.ShiftRecord{
		{Date: "2024-03-05", Shift: model.ShiftMorning, User: "alice"},
	})

	resp, err := svc.SaveMySchedule(context.Background(), "alice", &dto.SaveScheduleRequest{
		Entries: []dto.ShiftEntry{
			{Date: "2024-03-05", Shift: model.ShiftFullDay}, // 已有 → 更新
			{Date: "2024-03-06", Shift: model.ShiftOff},     // 显式休 → 新增行
		},
	})
	if err != nil {
		t.Fatalf("保存失败: %v", err)
	}
	if resp.Saved != 2 || resp.Created != 1 || resp.Updated != 1 {
		t.Errorf("计数不符: %+v", resp)
	}
}

func TestSaveRejectsInvalidShiftValue(t *testing.T) {
	svc, shiftRepo := setupScheduleService(nil)

	_, err := svc.SaveMySchedule(context.Background(), "alice", &dto.SaveScheduleRequest{
		Entries: []dto.ShiftEntry{
			{Date: "2024-03-05", Shift: model.ShiftMorning},
			{Date: "2024-03-06", Shift: "加班"}, // 自由文本不允许
		},
	})
	if !errors.Is(err, ErrInvalidShiftValue) {
		t.Fatalf("期望 ErrInvalidShiftValue，实际 %v", err)
	}
	// 先全量校验：任何一条非法都不落表
	if len(shiftRepo.records) != 0 {
		t.Error("校验失败时不应有任何写入")
	}
}

func TestSaveRejectsInvalidDate(t *testing.T) {
	svc, _ := setupScheduleService(nil)

	_, err := svc.SaveMySchedule(context.Background(), "alice", &dto.SaveScheduleRequest{
		Entries: []dto.ShiftEntry{{Date: "05/03/2024", Shift: model.ShiftMorning}},
	})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("期望 ErrInvalidDate，实际 %v", err)
	}
}

func TestSaveStoreFailureSurfaces(t *testing.T) {
	storeErr := errors.New("store down")
	svc, shiftRepo := setupScheduleService(nil)
	shiftRepo.upsertErr = storeErr

	_, err := svc.SaveMySchedule(context.Background(), "alice", &dto.SaveScheduleRequest{
		Entries: []dto.ShiftEntry{{Date: "2024-03-05", Shift: model.ShiftMorning}},
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("存储失败必须如实上报，实际 %v", err)
	}
}

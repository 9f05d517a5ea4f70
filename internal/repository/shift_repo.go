package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
)

// ── 排班记录适配器 ──────────────────────────────────────────
//
// 排班工作表列序固定：date | shift | user | status（首行为表头）。
// Upsert 采用“先查后写”：存在即原地更新 shift 单元格（保持行身份），
// 不存在则追加整行。两步之间没有任何并发控制，同一用户对同一日期的
// 并发保存可能产生重复行 —— 这是已知并记录在案的风险，存储端不提供
// 按键 Upsert 原语时无法消除。
// ─────────────────────────────────────────────────────────────

// 排班工作表列号（1-based）
const (
	shiftColDate  = 1
	shiftColShift = 2
	shiftColUser  = 3
)

// ShiftRepository 排班记录数据访问接口
type ShiftRepository interface {
	// ListAll 读取全部排班记录（供总表使用）；日期不可解析的行跳过并告警
	ListAll(ctx context.Context) ([]model.ShiftRecord, error)
	// FetchMonth 读取某用户某月的排班，返回稀疏映射（ISO 日期 → 班别）
	// 无记录的日期不出现在结果中，由调用方默认为「休」
	FetchMonth(ctx context.Context, username string, year, month int) (map[string]model.ShiftValue, error)
	// Upsert 保存某用户某日期的班别；返回是否新增了行
	Upsert(ctx context.Context, username, date string, shift model.ShiftValue) (created bool, err error)
}

// shiftRepo ShiftRepository 的表格存储实现
type shiftRepo struct {
	store     ValueStore
	worksheet string
	logger    *zap.Logger
}

// NewShiftRepo 创建 ShiftRepository 实例
func NewShiftRepo(store ValueStore, worksheet string, logger *zap.Logger) ShiftRepository {
	return &shiftRepo{store: store, worksheet: worksheet, logger: logger}
}

// 历史数据中出现过的几种日期写法，读取时统一规范化为 ISO
var dateLayouts = []string{
	model.DateLayout,
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
}

// parseDate 宽松解析日期并规范化为 YYYY-MM-DD
func parseDate(raw string) (time.Time, string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, t.Format(model.DateLayout), nil
		}
	}
	return time.Time{}, "", fmt.Errorf("无法解析日期 %q", raw)
}

func (r *shiftRepo) ListAll(ctx context.Context) ([]model.ShiftRecord, error) {
	values, err := r.store.ListValues(ctx, r.worksheet)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}

	records := make([]model.ShiftRecord, 0, len(values)-1)
	for i, row := range values[1:] {
		sheetRow := i + 2 // 跳过表头，行号 1-based

		if len(row) < shiftColUser {
			r.logger.Warn("排班工作表存在残缺行，已跳过",
				zap.Int("sheet_row", sheetRow),
				zap.Int("cols", len(row)),
			)
			continue
		}

		_, isoDate, err := parseDate(row[shiftColDate-1])
		if err != nil {
			// 数据质量告警：跳过单行，总表仍可生成
			r.logger.Warn("排班工作表存在无法解析的日期，已跳过",
				zap.Int("sheet_row", sheetRow),
				zap.String("raw_date", row[shiftColDate-1]),
			)
			continue
		}

		rec := model.ShiftRecord{
			Date:     isoDate,
			Shift:    model.ShiftValue(row[shiftColShift-1]),
			User:     row[shiftColUser-1],
			SheetRow: sheetRow,
		}
		if len(row) > shiftColUser {
			rec.Status = row[shiftColUser]
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *shiftRepo) FetchMonth(ctx context.Context, username string, year, month int) (map[string]model.ShiftValue, error) {
	records, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]model.ShiftValue)
	for _, rec := range records {
		if rec.User != username {
			continue
		}
		t, _ := time.Parse(model.DateLayout, rec.Date)
		if t.Year() != year || int(t.Month()) != month {
			continue
		}
		// 重复行以先出现者为准（与行号较小者一致）
		if _, exists := result[rec.Date]; !exists {
			result[rec.Date] = rec.Shift
		}
	}
	return result, nil
}

func (r *shiftRepo) Upsert(ctx context.Context, username, date string, shift model.ShiftValue) (bool, error) {
	_, isoDate, err := parseDate(date)
	if err != nil {
		return false, err
	}

	records, err := r.ListAll(ctx)
	if err != nil {
		return false, err
	}

	// 先查：按 (user, date) 线性扫描
	for _, rec := range records {
		if rec.User == username && rec.Date == isoDate {
			// 原地更新 shift 单元格，保持行身份与 status 不变
			if err := r.store.UpdateCell(ctx, r.worksheet, rec.SheetRow, shiftColShift, string(shift)); err != nil {
				return false, err
			}
			return false, nil
		}
	}

	// 后写：追加新行
	row := []string{isoDate, string(shift), username, model.StatusScheduled}
	if err := r.store.AppendRow(ctx, r.worksheet, row); err != nil {
		return false, err
	}
	return true, nil
}

package service

import (
	"errors"
	"time"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
)

// ErrInvalidPeriod 年月参数无效
var ErrInvalidPeriod = errors.New("年月参数无效")

// weekdayLabels 星期标签，周一为一周之始（全站统一约定）
var weekdayLabels = [7]string{"一", "二", "三", "四", "五", "六", "日"}

// weekdayLabel 计算某天的星期标签
func weekdayLabel(t time.Time) string {
	// time.Weekday 以周日为 0，转换为周一为 0
	return weekdayLabels[(int(t.Weekday())+6)%7]
}

// daysInMonth 计算某月天数（next month 的第 0 天即本月最后一天，自动处理闰年）
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// monthDate 构造某月某日的日期
func monthDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// validatePeriod 校验年月
func validatePeriod(year, month int) error {
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return ErrInvalidPeriod
	}
	return nil
}

// isoDate 日期的规范字符串
func isoDate(t time.Time) string {
	return t.Format(model.DateLayout)
}

package model

// ShiftValue 班别枚举 — 与排班工作表中实际存储的字符串一致
// 写入前必须通过 Valid() 校验，任何自由文本都不允许落表
type ShiftValue string

const (
	ShiftOff              ShiftValue = "休"
	ShiftFullDay          ShiftValue = "全天"
	ShiftMorning          ShiftValue = "早"
	ShiftAfternoon        ShiftValue = "午"
	ShiftEvening          ShiftValue = "晚"
	ShiftMorningAfternoon ShiftValue = "早午"
	ShiftAfternoonEvening ShiftValue = "午晚"
	ShiftMorningEvening   ShiftValue = "早晚"
)

// ShiftOptions 班别选项，顺序与前端下拉框一致
var ShiftOptions = []ShiftValue{
	ShiftOff,
	ShiftFullDay,
	ShiftMorning,
	ShiftAfternoon,
	ShiftEvening,
	ShiftMorningAfternoon,
	ShiftAfternoonEvening,
	ShiftMorningEvening,
}

// Valid 检查是否为 8 个合法班别之一
func (v ShiftValue) Valid() bool {
	for _, opt := range ShiftOptions {
		if v == opt {
			return true
		}
	}
	return false
}

// Classification 单元格语义分类，供展示层配色等决策使用
// 分类是数据契约的一部分，具体配色不是
type Classification string

const (
	ClassOff     Classification = "off"
	ClassFull    Classification = "full"
	ClassPartial Classification = "partial"
	ClassUnknown Classification = "unknown"
)

// Classify 计算班别的语义分类
func (v ShiftValue) Classify() Classification {
	switch {
	case v == ShiftOff:
		return ClassOff
	case v == ShiftFullDay:
		return ClassFull
	case v.Valid():
		return ClassPartial
	default:
		return ClassUnknown
	}
}

// DateLayout 排班日期的规范格式（ISO 日期）
const DateLayout = "2006-01-02"

// StatusScheduled 新增排班记录时写入的状态标签
const StatusScheduled = "scheduled"

// ShiftRecord 排班记录 — 对应排班工作表的一行
// 唯一性约束：同一 (user, date) 至多一行，由“先查后写”的 Upsert 维护，
// 外部存储本身不提供该约束
type ShiftRecord struct {
	Date   string     `json:"date"` // 规范化为 YYYY-MM-DD
	Shift  ShiftValue `json:"shift"`
	User   string     `json:"user"`
	Status string     `json:"status"`

	// SheetRow 记录在工作表中的行号（1-based，含表头行）
	// 0 表示尚未落表
	SheetRow int `json:"-"`
}

package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ValueStore 表格存储的行/格原语
// 由 sheets.Client 实现；测试中以内存实现替代
type ValueStore interface {
	ListValues(ctx context.Context, worksheet string) ([][]string, error)
	AppendRow(ctx context.Context, worksheet string, row []string) error
	UpdateCell(ctx context.Context, worksheet string, row, col int, value string) error
}

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("用户不存在")

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User  UserRepository
	Shift ShiftRepository
}

// NewRepository 创建 Repository 聚合
// userSheet / shiftSheet 为两张逻辑表所在的工作表名
func NewRepository(store ValueStore, userSheet, shiftSheet string, logger *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepo(store, userSheet, logger),
		Shift: NewShiftRepo(store, shiftSheet, logger),
	}
}

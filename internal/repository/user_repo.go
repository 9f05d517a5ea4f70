package repository

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
)

// UserRepository 用户数据访问接口
// users 工作表由外部开通流程维护，这里只读
type UserRepository interface {
	ListAll(ctx context.Context) ([]model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// userRepo UserRepository 的表格存储实现
type userRepo struct {
	store     ValueStore
	worksheet string
	logger    *zap.Logger
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(store ValueStore, worksheet string, logger *zap.Logger) UserRepository {
	return &userRepo{store: store, worksheet: worksheet, logger: logger}
}

// users 工作表按表头列名取列，列序可变
var userColumns = []string{"role", "display_name", "username", "password_hash"}

func (r *userRepo) ListAll(ctx context.Context) ([]model.User, error) {
	values, err := r.store.ListValues(ctx, r.worksheet)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("users 工作表为空（缺少表头行）")
	}

	// 解析表头
	colIdx := make(map[string]int, len(values[0]))
	for i, name := range values[0] {
		colIdx[strings.TrimSpace(name)] = i
	}
	for _, name := range userColumns {
		if _, ok := colIdx[name]; !ok {
			return nil, fmt.Errorf("users 工作表缺少列 %q", name)
		}
	}

	cell := func(row []string, name string) string {
		idx := colIdx[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	users := make([]model.User, 0, len(values)-1)
	for i, row := range values[1:] {
		u := model.User{
			Role:         cell(row, "role"),
			DisplayName:  cell(row, "display_name"),
			Username:     cell(row, "username"),
			PasswordHash: cell(row, "password_hash"),
		}
		if u.Username == "" {
			// 数据质量问题：跳过该行，不中断整体读取
			r.logger.Warn("users 工作表存在缺少 username 的行，已跳过",
				zap.Int("sheet_row", i+2),
			)
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	users, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/dto"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/repository"
)

// ErrInvalidCredentials 账号或密码错误
// 用户不存在与密码错误返回同一个错误，不泄露账号是否存在
var ErrInvalidCredentials = errors.New("账号或密码错误")

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*model.User, error)
}

type authService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(repo *repository.Repository, logger *zap.Logger) AuthService {
	return &authService{repo: repo, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*model.User, error) {
	// 1. 查询用户（存储故障必须如实透传，不能伪装成凭据错误）
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

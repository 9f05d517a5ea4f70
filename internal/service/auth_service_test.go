package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/dto"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/repository"
)

func setupTestAuthService(t *testing.T) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成测试密码哈希失败: %v", err)
	}

	repo, _ := newTestRepo([]model.User{
		{Role: model.RoleMember, DisplayName: "爱丽丝", Username: "alice", PasswordHash: string(hash)},
	}, nil)
	return NewAuthService(repo, zap.NewNop())
}

func TestLoginSuccess(t *testing.T) {
	svc := setupTestAuthService(t)

	user, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if user.DisplayName != "爱丽丝" || user.Role != model.RoleMember {
		t.Errorf("返回的用户信息不符: %+v", user)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("期望 ErrInvalidCredentials，实际 %v", err)
	}
}

func TestLoginUnknownUserIndistinguishable(t *testing.T) {
	svc := setupTestAuthService(t)

	// 未知用户与密码错误必须返回同一个错误
	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "password123",
	})
	_, errWrongPw := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})

	if !errors.Is(errUnknown, ErrInvalidCredentials) || !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Fatalf("两种失败都应为 ErrInvalidCredentials: %v / %v", errUnknown, errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Error("未知用户与密码错误的报错信息应不可区分")
	}
}

func TestLoginStoreErrorNotMaskedAsAuthFailure(t *testing.T) {
	storeErr := errors.New("store down")
	repo := &repository.Repository{
		User:  &mockUserRepo{err: storeErr},
		Shift: &mockShiftRepo{},
	}
	svc := NewAuthService(repo, zap.NewNop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "password123",
	})
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("存储故障不能伪装成凭据错误")
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("期望透传存储错误，实际 %v", err)
	}
}

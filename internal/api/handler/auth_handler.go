package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/dto"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/service"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/session"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/sheets"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
	logger  *zap.Logger
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, logger: logger}
}

// Login 用户登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	user, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "账号或密码错误")
			return
		}
		if errors.Is(err, sheets.ErrStoreUnavailable) {
			response.BadGateway(c, 12001, "外部表格存储暂时不可用，请稍后再试")
			return
		}
		response.InternalError(c)
		return
	}

	// 登录成功：建立会话
	if err := session.Create(c, user); err != nil {
		h.logger.Error("写入会话失败", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, dto.SessionResponse{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Role:        user.Role,
	})
}

// Logout 用户登出
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		h.logger.Error("清除会话失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Me 当前会话信息
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	sc, ok := MustGetSession(c)
	if !ok {
		return
	}
	response.OK(c, dto.SessionResponse{
		Username:    sc.Username,
		DisplayName: sc.DisplayName,
		Role:        sc.Role,
	})
}

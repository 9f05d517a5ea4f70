package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
)

// ── 会话上下文 ──────────────────────────────────────────────
//
// 会话状态是显式传递的值，绝不作为全局可变状态访问：
// 中间件用 FromRequest 恢复 Context 并注入请求上下文，
// 登录 / 登出通过 Create / Clear 显式管理生命周期。
// 底层是内存会话存储，进程重启后所有会话失效。
// ─────────────────────────────────────────────────────────────

const (
	keyAuthenticated = "authenticated"
	keyUsername      = "username"
	keyDisplayName   = "display_name"
	keyRole          = "role"
)

// Context 会话上下文
type Context struct {
	Authenticated bool
	Username      string
	DisplayName   string
	Role          string
}

// Create 登录成功后建立会话
func Create(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(keyAuthenticated, true)
	s.Set(keyUsername, user.Username)
	s.Set(keyDisplayName, user.DisplayName)
	s.Set(keyRole, user.Role)
	return s.Save()
}

// Clear 登出时清空会话
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// FromRequest 从请求中恢复会话上下文；未登录时 Authenticated 为 false
func FromRequest(c *gin.Context) Context {
	s := sessions.Default(c)

	auth, _ := s.Get(keyAuthenticated).(bool)
	if !auth {
		return Context{}
	}

	username, _ := s.Get(keyUsername).(string)
	displayName, _ := s.Get(keyDisplayName).(string)
	role, _ := s.Get(keyRole).(string)

	return Context{
		Authenticated: true,
		Username:      username,
		DisplayName:   displayName,
		Role:          role,
	}
}

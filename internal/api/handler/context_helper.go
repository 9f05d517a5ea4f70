package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/session"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/pkg/response"
)

// MustGetSession 从 Gin 上下文中安全提取会话上下文。
// 如果会话中间件未正确注入，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetSession(c *gin.Context) (session.Context, bool) {
	v, exists := c.Get("session_ctx")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return session.Context{}, false
	}
	sc, ok := v.(session.Context)
	if !ok || !sc.Authenticated {
		response.Unauthorized(c, 10002, "未认证")
		return session.Context{}, false
	}
	return sc, true
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/session"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/pkg/response"
)

// SessionAuth 会话认证中间件
// 从 Cookie 会话恢复 session.Context 并注入请求上下文
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := session.FromRequest(c)
		if !sc.Authenticated {
			response.Unauthorized(c, 10002, "未登录或会话已失效")
			c.Abort()
			return
		}

		// 将会话上下文注入，后续 Handler 通过 MustGetSession 读取
		c.Set("session_ctx", sc)
		c.Set("username", sc.Username)
		c.Set("role", sc.Role)

		c.Next()
	}
}

// RoleAuth 角色权限中间件
// 检查当前用户是否具有指定角色之一
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "未认证")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "无权限访问")
		c.Abort()
	}
}

package router

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/config"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/api/handler"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/api/middleware"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// 内存会话存储：进程重启后所有会话失效（有意为之）
	store := memstore.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
	})
	r.Use(sessions.Sessions(cfg.Session.CookieName, store))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；登录接口限流防爆破）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.SessionAuth())
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 个人排班模块
			authorized.GET("/shifts/options", h.Schedule.ShiftOptions)
			schedules := authorized.Group("/schedules")
			{
				schedules.GET("/my", h.Schedule.GetMySchedule)
				schedules.PUT("/my", h.Schedule.SaveMySchedule)
				schedules.GET("/my/ics", h.Schedule.ExportMyCalendar)
			}

			// 总表与导出模块（仅管理员）
			authorized.GET("/summary", middleware.RoleAuth(model.RoleAdmin), h.Summary.GetSummary)
			authorized.GET("/export/summary", middleware.RoleAuth(model.RoleAdmin), h.Export.ExportSummary)
		}
	}

	return r
}

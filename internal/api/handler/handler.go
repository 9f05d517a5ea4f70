package handler

import (
	"go.uber.org/zap"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth     *AuthHandler
	Schedule *ScheduleHandler
	Summary  *SummaryHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth, logger),
		Schedule: NewScheduleHandler(svc.Schedule, svc.Calendar),
		Summary:  NewSummaryHandler(svc.Summary),
		Export:   NewExportHandler(svc.Export),
	}
}

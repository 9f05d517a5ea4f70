package service

import (
	"go.uber.org/zap"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth     AuthService
	Schedule ScheduleService
	Summary  SummaryService
	Export   ExportService
	Calendar CalendarService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, logger),
		Schedule: NewScheduleService(repo, logger),
		Summary:  NewSummaryService(repo, logger),
		Export:   NewExportService(repo, logger),
		Calendar: NewCalendarService(repo, logger),
	}
}

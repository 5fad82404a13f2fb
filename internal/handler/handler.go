package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/bagdasarian/project-tracker/internal/service"
)

// Pinger проверяет доступность хранилища для /health
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	userService      service.UserService
	projectService   service.ProjectService
	taskService      service.TaskService
	statsService     service.StatsService
	assistantService service.AssistantService
	db               Pinger
	logger           *zap.Logger
}

func NewHandler(
	userService service.UserService,
	projectService service.ProjectService,
	taskService service.TaskService,
	statsService service.StatsService,
	assistantService service.AssistantService,
	db Pinger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		userService:      userService,
		projectService:   projectService,
		taskService:      taskService,
		statsService:     statsService,
		assistantService: assistantService,
		db:               db,
		logger:           logger,
	}
}

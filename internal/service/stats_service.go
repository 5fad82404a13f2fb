package service

import (
	"context"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

type StatsService interface {
	WeeklyStats(ctx context.Context, actor domain.Actor, projectID string) (*domain.WeeklyStats, error)
	ProjectSummary(ctx context.Context, actor domain.Actor, projectID string) (*domain.ProjectSummary, error)
}

package service

import (
	"context"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, actor domain.Actor, task *domain.Task) (*domain.Task, error)
	List(ctx context.Context, actor domain.Actor, projectID string) ([]*domain.Task, error)
	Get(ctx context.Context, actor domain.Actor, projectID, taskID string) (*domain.Task, error)
	Update(ctx context.Context, actor domain.Actor, projectID, taskID string, update domain.TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, actor domain.Actor, projectID, taskID string) error
}

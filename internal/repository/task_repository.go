package repository

import (
	"context"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	// GetByID при withAssignee=true заполняет Task.Assignee
	GetByID(ctx context.Context, id string, withAssignee bool) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string, withAssignee bool) ([]*domain.Task, error)
	Update(ctx context.Context, id string, update domain.TaskUpdate) error
	Delete(ctx context.Context, id string) error
}

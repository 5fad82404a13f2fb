package repository

import (
	"context"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListByMember(ctx context.Context, userID string) ([]*domain.Project, error)
	Update(ctx context.Context, id string, update domain.ProjectUpdate) error
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, projectID, userID string) error
}

package service

import (
	"context"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

type ProjectService interface {
	Create(ctx context.Context, actor domain.Actor, title, description string) (*domain.Project, error)
	List(ctx context.Context, actor domain.Actor) ([]*domain.Project, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Project, error)
	Update(ctx context.Context, actor domain.Actor, id string, update domain.ProjectUpdate) (*domain.Project, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	AssignMember(ctx context.Context, actor domain.Actor, projectID, memberID string) (*domain.Project, error)
}

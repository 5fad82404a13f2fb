package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/bagdasarian/project-tracker/internal/domain"
	"github.com/bagdasarian/project-tracker/internal/repository"
)

type projectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	logger      *zap.Logger
}

// NewProjectService создает новый экземпляр ProjectService
func NewProjectService(
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Create создает проект без участников; создателем становится актор
func (s *projectService) Create(ctx context.Context, actor domain.Actor, title, description string) (*domain.Project, error) {
	if err := Authorize(actor, ActionCreateProject, Resource{}); err != nil {
		return nil, err
	}

	project := &domain.Project{
		Title:           title,
		Description:     description,
		CreatedBy:       actor.ID,
		AssignedMembers: []string{},
		Status:          domain.ProjectStatusActive,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created", zap.String("project_id", project.ID), zap.String("by", actor.ID))
	return project, nil
}

// List возвращает проекты, видимые актору
func (s *projectService) List(ctx context.Context, actor domain.Actor) ([]*domain.Project, error) {
	scope, err := ProjectListScope(actor)
	if err != nil {
		return nil, err
	}
	if scope.All {
		return s.projectRepo.List(ctx)
	}
	return s.projectRepo.ListByMember(ctx, scope.MemberID)
}

func (s *projectService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Project, error) {
	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, ActionReadProject, Resource{Project: project}); err != nil {
		return nil, err
	}
	return project, nil
}

// Update меняет название, описание и статус; createdBy не меняется
func (s *projectService) Update(ctx context.Context, actor domain.Actor, id string, update domain.ProjectUpdate) (*domain.Project, error) {
	if err := Authorize(actor, ActionUpdateProject, Resource{}); err != nil {
		return nil, err
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, domain.NewBadRequestError("status must be Active or Completed")
	}

	if _, err := s.getProject(ctx, id); err != nil {
		return nil, err
	}

	err := s.projectRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("project with id " + id)
		}
		return nil, err
	}

	return s.getProject(ctx, id)
}

// Delete удаляет проект вместе с его задачами
func (s *projectService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := Authorize(actor, ActionDeleteProject, Resource{}); err != nil {
		return err
	}

	err := s.projectRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("project with id " + id)
		}
		return err
	}

	s.logger.Info("project deleted", zap.String("project_id", id), zap.String("by", actor.ID))
	return nil
}

// AssignMember добавляет пользователя в участники проекта.
// Повторное назначение - ошибка CONFLICT, а не молчаливый успех.
func (s *projectService) AssignMember(ctx context.Context, actor domain.Actor, projectID, memberID string) (*domain.Project, error) {
	if err := Authorize(actor, ActionAssignMember, Resource{}); err != nil {
		return nil, err
	}

	project, err := s.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := Authorize(actor, ActionAssignMember, Resource{Project: project, MemberID: memberID}); err != nil {
		return nil, err
	}

	_, err = s.userRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("user with id " + memberID)
		}
		return nil, err
	}

	err = s.projectRepo.AddMember(ctx, projectID, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("project with id " + projectID)
		}
		return nil, err
	}

	s.logger.Info("member assigned",
		zap.String("project_id", projectID),
		zap.String("member_id", memberID),
		zap.String("by", actor.ID),
	)
	return s.getProject(ctx, projectID)
}

func (s *projectService) getProject(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("project with id " + id)
		}
		return nil, err
	}
	return project, nil
}

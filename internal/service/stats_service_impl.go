package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bagdasarian/project-tracker/internal/domain"
	"github.com/bagdasarian/project-tracker/internal/repository"
)

type statsService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	now         func() time.Time
}

func NewStatsService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) StatsService {
	return &statsService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		now:         time.Now,
	}
}

// WeeklyStats считает статистику за последние 7 дней по задачам проекта
func (s *statsService) WeeklyStats(ctx context.Context, actor domain.Actor, projectID string) (*domain.WeeklyStats, error) {
	project, tasks, err := s.loadProject(ctx, actor, projectID, true)
	if err != nil {
		return nil, err
	}

	stats := AggregateWeeklyStats(project.Title, tasks, s.now())
	return &stats, nil
}

// ProjectSummary возвращает проект и задачи в форме для краткой сводки
func (s *statsService) ProjectSummary(ctx context.Context, actor domain.Actor, projectID string) (*domain.ProjectSummary, error) {
	project, tasks, err := s.loadProject(ctx, actor, projectID, false)
	if err != nil {
		return nil, err
	}

	summary := SummarizeProject(project, tasks)
	return &summary, nil
}

// loadProject читает проект и его задачи параллельно, затем проверяет доступ на чтение проекта
func (s *statsService) loadProject(ctx context.Context, actor domain.Actor, projectID string, withAssignee bool) (*domain.Project, []*domain.Task, error) {
	var (
		project *domain.Project
		tasks   []*domain.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.projectRepo.GetByID(gctx, projectID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.NewNotFoundError("project with id " + projectID)
			}
			return err
		}
		project = p
		return nil
	})
	g.Go(func() error {
		t, err := s.taskRepo.ListByProject(gctx, projectID, withAssignee)
		if err != nil {
			return err
		}
		tasks = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if err := Authorize(actor, ActionReadProject, Resource{Project: project}); err != nil {
		return nil, nil, err
	}
	return project, tasks, nil
}

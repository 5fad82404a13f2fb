package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/project-tracker/internal/domain"
	"github.com/bagdasarian/project-tracker/internal/repository"
)

type taskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService создает новый экземпляр TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// Create создает задачу в проекте; по умолчанию приоритет Medium и статус Todo
func (s *taskService) Create(ctx context.Context, actor domain.Actor, task *domain.Task) (*domain.Task, error) {
	project, err := s.projectRepo.GetByID(ctx, task.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("project with id " + task.ProjectID)
		}
		return nil, err
	}

	if err := Authorize(actor, ActionCreateTask, Resource{Project: project}); err != nil {
		return nil, err
	}

	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusTodo
	}
	if err := validateTaskEnums(&task.Priority, &task.Status); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return s.getTask(ctx, task.ID, true)
}

// List возвращает задачи проекта вместе с исполнителями
func (s *taskService) List(ctx context.Context, actor domain.Actor, projectID string) ([]*domain.Task, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("project with id " + projectID)
		}
		return nil, err
	}

	if err := Authorize(actor, ActionReadTaskList, Resource{Project: project}); err != nil {
		return nil, err
	}

	return s.taskRepo.ListByProject(ctx, projectID, true)
}

func (s *taskService) Get(ctx context.Context, actor domain.Actor, projectID, taskID string) (*domain.Task, error) {
	task, err := s.getProjectTask(ctx, projectID, taskID, true)
	if err != nil {
		return nil, err
	}

	if err := Authorize(actor, ActionReadTask, Resource{Task: task}); err != nil {
		return nil, err
	}
	return task, nil
}

// Update меняет переданные поля задачи; исполнитель задачи может менять ее сам
func (s *taskService) Update(ctx context.Context, actor domain.Actor, projectID, taskID string, update domain.TaskUpdate) (*domain.Task, error) {
	task, err := s.getProjectTask(ctx, projectID, taskID, false)
	if err != nil {
		return nil, err
	}

	if err := Authorize(actor, ActionUpdateTask, Resource{Task: task}); err != nil {
		return nil, err
	}

	if err := validateTaskEnums(update.Priority, update.Status); err != nil {
		return nil, err
	}

	err = s.taskRepo.Update(ctx, taskID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("task with id " + taskID)
		}
		return nil, err
	}

	return s.getTask(ctx, taskID, true)
}

func (s *taskService) Delete(ctx context.Context, actor domain.Actor, projectID, taskID string) error {
	task, err := s.getProjectTask(ctx, projectID, taskID, false)
	if err != nil {
		return err
	}

	if err := Authorize(actor, ActionDeleteTask, Resource{Task: task}); err != nil {
		return err
	}

	err = s.taskRepo.Delete(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("task with id " + taskID)
		}
		return err
	}
	return nil
}

// getProjectTask загружает задачу и проверяет, что она принадлежит проекту из пути
func (s *taskService) getProjectTask(ctx context.Context, projectID, taskID string, withAssignee bool) (*domain.Task, error) {
	task, err := s.getTask(ctx, taskID, withAssignee)
	if err != nil {
		return nil, err
	}
	if task.ProjectID != projectID {
		return nil, domain.NewNotFoundError("task with id " + taskID)
	}
	return task, nil
}

func (s *taskService) getTask(ctx context.Context, id string, withAssignee bool) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id, withAssignee)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("task with id " + id)
		}
		return nil, err
	}
	return task, nil
}

func validateTaskEnums(priority *domain.Priority, status *domain.TaskStatus) error {
	if priority != nil && !priority.Valid() {
		return domain.NewBadRequestError("priority must be Low, Medium or High")
	}
	if status != nil && !status.Valid() {
		return domain.NewBadRequestError("status must be Todo, InProgress or Done")
	}
	return nil
}

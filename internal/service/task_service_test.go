package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/project-tracker/internal/domain"
	"github.com/bagdasarian/project-tracker/internal/repository"
)

func TestTaskService_Create(t *testing.T) {
	project := &domain.Project{ID: "p1", AssignedMembers: []string{member.ID}}

	t.Run("участник создает задачу с приоритетом и статусом по умолчанию", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		projectRepo := new(MockProjectRepository)
		svc := NewTaskService(taskRepo, projectRepo)

		due := time.Now().Add(24 * time.Hour)
		projectRepo.On("GetByID", mock.Anything, "p1").Return(project, nil).Once()
		taskRepo.On("Create", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
			return task.Priority == domain.PriorityMedium && task.Status == domain.TaskStatusTodo
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Task).ID = "t1"
		}).Return(nil).Once()
		taskRepo.On("GetByID", mock.Anything, "t1", true).Return(&domain.Task{
			ID:         "t1",
			ProjectID:  "p1",
			Priority:   domain.PriorityMedium,
			Status:     domain.TaskStatusTodo,
			AssignedTo: member.ID,
			Assignee:   &domain.UserRef{ID: member.ID, Name: "Bob"},
			DueDate:    due,
		}, nil).Once()

		task, err := svc.Create(context.Background(), member, &domain.Task{
			ProjectID:  "p1",
			Title:      "Write docs",
			AssignedTo: member.ID,
			DueDate:    due,
		})

		require.NoError(t, err)
		assert.Equal(t, "t1", task.ID)
		require.NotNil(t, task.Assignee)
		assert.Equal(t, "Bob", task.Assignee.Name)
		taskRepo.AssertExpectations(t)
	})

	t.Run("ошибка: не участник проекта", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		projectRepo := new(MockProjectRepository)
		svc := NewTaskService(taskRepo, projectRepo)

		projectRepo.On("GetByID", mock.Anything, "p1").Return(project, nil).Once()

		_, err := svc.Create(context.Background(), manager, &domain.Task{ProjectID: "p1"})

		assert.True(t, errors.Is(err, domain.ErrForbidden))
		taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: невалидный приоритет", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		svc := NewTaskService(new(MockTaskRepository), projectRepo)

		projectRepo.On("GetByID", mock.Anything, "p1").Return(project, nil).Once()

		_, err := svc.Create(context.Background(), admin, &domain.Task{ProjectID: "p1", Priority: "Urgent"})

		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, domain.CodeBadRequest, domainErr.Code)
	})

	t.Run("ошибка: проект не найден", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		svc := NewTaskService(new(MockTaskRepository), projectRepo)

		projectRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Create(context.Background(), admin, &domain.Task{ProjectID: "missing"})

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestTaskService_Get(t *testing.T) {
	stored := &domain.Task{ID: "t1", ProjectID: "p1", AssignedTo: "u9"}

	t.Run("исполнитель читает задачу", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		svc := NewTaskService(taskRepo, new(MockProjectRepository))

		taskRepo.On("GetByID", mock.Anything, "t1", true).Return(stored, nil).Once()

		task, err := svc.Get(context.Background(), domain.Actor{ID: "u9", Role: domain.RoleMember}, "p1", "t1")

		require.NoError(t, err)
		assert.Equal(t, "t1", task.ID)
	})

	t.Run("ошибка: задача из другого проекта", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		svc := NewTaskService(taskRepo, new(MockProjectRepository))

		taskRepo.On("GetByID", mock.Anything, "t1", true).Return(stored, nil).Once()

		_, err := svc.Get(context.Background(), admin, "p2", "t1")

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("ошибка: чужая задача", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		svc := NewTaskService(taskRepo, new(MockProjectRepository))

		taskRepo.On("GetByID", mock.Anything, "t1", true).Return(stored, nil).Once()

		_, err := svc.Get(context.Background(), member, "p1", "t1")

		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})
}

func TestTaskService_Update(t *testing.T) {
	stored := &domain.Task{ID: "t1", ProjectID: "p1", AssignedTo: "u9", Status: domain.TaskStatusTodo}

	t.Run("менеджер меняет статус чужой задачи", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		svc := NewTaskService(taskRepo, new(MockProjectRepository))

		done := domain.TaskStatusDone
		update := domain.TaskUpdate{Status: &done}

		taskRepo.On("GetByID", mock.Anything, "t1", false).Return(stored, nil).Once()
		taskRepo.On("Update", mock.Anything, "t1", update).Return(nil).Once()
		taskRepo.On("GetByID", mock.Anything, "t1", true).Return(&domain.Task{ID: "t1", ProjectID: "p1", Status: done}, nil).Once()

		task, err := svc.Update(context.Background(), manager, "p1", "t1", update)

		require.NoError(t, err)
		assert.Equal(t, done, task.Status)
		taskRepo.AssertExpectations(t)
	})

	t.Run("ошибка: участник меняет чужую задачу", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		svc := NewTaskService(taskRepo, new(MockProjectRepository))

		taskRepo.On("GetByID", mock.Anything, "t1", false).Return(stored, nil).Once()

		_, err := svc.Update(context.Background(), member, "p1", "t1", domain.TaskUpdate{})

		assert.True(t, errors.Is(err, domain.ErrForbidden))
		taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ошибка: новый исполнитель не существует", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		svc := NewTaskService(taskRepo, new(MockProjectRepository))

		ghost := "ghost"
		update := domain.TaskUpdate{AssignedTo: &ghost}

		taskRepo.On("GetByID", mock.Anything, "t1", false).Return(stored, nil).Once()
		taskRepo.On("Update", mock.Anything, "t1", update).Return(domain.NewNotFoundError("user with id ghost")).Once()

		_, err := svc.Update(context.Background(), admin, "p1", "t1", update)

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestTaskService_Delete(t *testing.T) {
	stored := &domain.Task{ID: "t1", ProjectID: "p1", AssignedTo: "m1"}

	t.Run("админ удаляет задачу", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		svc := NewTaskService(taskRepo, new(MockProjectRepository))

		taskRepo.On("GetByID", mock.Anything, "t1", false).Return(stored, nil).Once()
		taskRepo.On("Delete", mock.Anything, "t1").Return(nil).Once()

		require.NoError(t, svc.Delete(context.Background(), admin, "p1", "t1"))
		taskRepo.AssertExpectations(t)
	})

	t.Run("ошибка: исполнитель-менеджер не удаляет задачу", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		svc := NewTaskService(taskRepo, new(MockProjectRepository))

		taskRepo.On("GetByID", mock.Anything, "t1", false).Return(stored, nil).Once()

		err := svc.Delete(context.Background(), manager, "p1", "t1")

		assert.True(t, errors.Is(err, domain.ErrForbidden))
		taskRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestTaskService_List(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	taskRepo := new(MockTaskRepository)
	svc := NewTaskService(taskRepo, projectRepo)

	project := &domain.Project{ID: "p1", AssignedMembers: []string{member.ID}}
	projectRepo.On("GetByID", mock.Anything, "p1").Return(project, nil)
	taskRepo.On("ListByProject", mock.Anything, "p1", true).Return([]*domain.Task{{ID: "t1"}}, nil).Once()

	tasks, err := svc.List(context.Background(), member, "p1")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	_, err = svc.List(context.Background(), domain.Actor{ID: "u7", Role: domain.RoleMember}, "p1")
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

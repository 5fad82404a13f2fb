//go:build integration
// +build integration

package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

func TestTaskFlowIntegration(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	admin := register(t, svc, "Admin", "admin@example.com", "admin-pw")
	manager := register(t, svc, "Manager", "manager@example.com", "manager-pw")
	alice := register(t, svc, "Alice", "alice@example.com", "secret")
	bob := register(t, svc, "Bob", "bob@example.com", "secret")

	project, err := svc.projects.Create(ctx, admin, "Apollo", "")
	require.NoError(t, err)
	_, err = svc.projects.AssignMember(ctx, admin, project.ID, alice.ID)
	require.NoError(t, err)
	_, err = svc.projects.AssignMember(ctx, admin, project.ID, bob.ID)
	require.NoError(t, err)

	due := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	task, err := svc.tasks.Create(ctx, alice, &domain.Task{
		ProjectID:  project.ID,
		Title:      "Write docs",
		AssignedTo: alice.ID,
		DueDate:    due,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, domain.TaskStatusTodo, task.Status)
	require.NotNil(t, task.Assignee)
	assert.Equal(t, "Alice", task.Assignee.Name)

	t.Run("исполнитель должен существовать", func(t *testing.T) {
		_, err := svc.tasks.Create(ctx, alice, &domain.Task{
			ProjectID:  project.ID,
			Title:      "Ghost task",
			AssignedTo: "6f1c2b1e-1a2b-4c3d-8e9f-0000000000ff",
			DueDate:    due,
		})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("не участник не создает задачи", func(t *testing.T) {
		_, err := svc.tasks.Create(ctx, manager, &domain.Task{
			ProjectID:  project.ID,
			Title:      "Manager task",
			AssignedTo: manager.ID,
			DueDate:    due,
		})
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("чужую задачу участник не читает", func(t *testing.T) {
		_, err := svc.tasks.Get(ctx, bob, project.ID, task.ID)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("исполнитель закрывает задачу", func(t *testing.T) {
		done := domain.TaskStatusDone
		updated, err := svc.tasks.Update(ctx, alice, project.ID, task.ID, domain.TaskUpdate{Status: &done})
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusDone, updated.Status)
		assert.Equal(t, "Write docs", updated.Title)
	})

	t.Run("список задач проекта", func(t *testing.T) {
		tasks, err := svc.tasks.List(ctx, bob, project.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Alice", tasks[0].Assignee.Name)
	})

	t.Run("только админ удаляет задачи", func(t *testing.T) {
		extra, err := svc.tasks.Create(ctx, bob, &domain.Task{
			ProjectID:  project.ID,
			Title:      "Temp",
			AssignedTo: bob.ID,
			DueDate:    due,
		})
		require.NoError(t, err)

		err = svc.tasks.Delete(ctx, manager, project.ID, extra.ID)
		assert.True(t, errors.Is(err, domain.ErrForbidden))

		require.NoError(t, svc.tasks.Delete(ctx, admin, project.ID, extra.ID))
	})
}

func TestWeeklyStatsIntegration(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	admin := register(t, svc, "Admin", "admin@example.com", "admin-pw")
	alice := register(t, svc, "Alice", "alice@example.com", "secret")
	bob := register(t, svc, "Bob", "bob@example.com", "secret")

	project, err := svc.projects.Create(ctx, admin, "Apollo", "")
	require.NoError(t, err)
	for _, member := range []domain.Actor{alice, bob} {
		_, err = svc.projects.AssignMember(ctx, admin, project.ID, member.ID)
		require.NoError(t, err)
	}

	create := func(title string, assignee domain.Actor, priority domain.Priority, due time.Time) *domain.Task {
		task, err := svc.tasks.Create(ctx, admin, &domain.Task{
			ProjectID:  project.ID,
			Title:      title,
			Priority:   priority,
			AssignedTo: assignee.ID,
			DueDate:    due,
		})
		require.NoError(t, err)
		return task
	}

	future := time.Now().Add(48 * time.Hour)
	past := time.Now().Add(-48 * time.Hour)

	done := domain.TaskStatusDone
	for _, task := range []*domain.Task{
		create("A", alice, domain.PriorityHigh, future),
		create("B", alice, domain.PriorityLow, future),
		create("C", bob, domain.PriorityHigh, future),
	} {
		_, err := svc.tasks.Update(ctx, admin, project.ID, task.ID, domain.TaskUpdate{Status: &done})
		require.NoError(t, err)
	}
	create("D", bob, domain.PriorityMedium, past)

	stats, err := svc.stats.WeeklyStats(ctx, alice, project.ID)
	require.NoError(t, err)

	assert.Equal(t, "Apollo", stats.ProjectTitle)
	assert.Equal(t, 3, stats.CompletedThisWeek)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, domain.PriorityBreakdown{High: 2, Medium: 1, Low: 1}, stats.PriorityBreakdown)
	assert.Equal(t, "Alice (2 tasks), Bob (1 tasks)", stats.TopContributors)

	outsider := register(t, svc, "Eve", "eve@example.com", "secret")
	_, err = svc.stats.WeeklyStats(ctx, outsider, project.ID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

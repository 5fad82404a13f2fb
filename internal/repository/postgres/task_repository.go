package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bagdasarian/project-tracker/internal/domain"
	"github.com/bagdasarian/project-tracker/internal/repository"
)

type taskRepository struct {
	executor DBExecutor
}

func NewTaskRepository(executor DBExecutor) *taskRepository {
	return &taskRepository{executor: executor}
}

const (
	taskColumns = `t.id, t.project_id, t.title, t.description, t.priority, t.status, t.assigned_to, t.due_date, t.created_at, t.updated_at`

	taskAssigneeColumns = taskColumns + `, u.id, u.name, u.email`

	tasksAssignedToFK = "tasks_assigned_to_fkey"
)

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (id, project_id, title, description, priority, status, assigned_to, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING created_at, updated_at
	`

	if !validID(task.ProjectID) {
		return repository.ErrNotFound
	}
	if !validID(task.AssignedTo) {
		return domain.NewNotFoundError("user with id " + task.AssignedTo)
	}

	id := uuid.NewString()
	err := r.executor.QueryRowContext(
		ctx,
		query,
		id,
		task.ProjectID,
		task.Title,
		task.Description,
		string(task.Priority),
		string(task.Status),
		task.AssignedTo,
		task.DueDate,
		time.Now(),
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return r.mapWriteError(err, task.AssignedTo)
	}

	task.ID = id
	return nil
}

// GetByID при withAssignee=true присоединяет имя и email исполнителя
func (r *taskRepository) GetByID(ctx context.Context, id string, withAssignee bool) (*domain.Task, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}

	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE t.id = $1`
	if withAssignee {
		query = `
			SELECT ` + taskAssigneeColumns + `
			FROM tasks t
			LEFT JOIN users u ON u.id = t.assigned_to
			WHERE t.id = $1
		`
	}

	task, err := scanTask(r.executor.QueryRowContext(ctx, query, id), withAssignee)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) ListByProject(ctx context.Context, projectID string, withAssignee bool) ([]*domain.Task, error) {
	if !validID(projectID) {
		return []*domain.Task{}, nil
	}

	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		WHERE t.project_id = $1
		ORDER BY t.created_at, t.id
	`
	if withAssignee {
		query = `
			SELECT ` + taskAssigneeColumns + `
			FROM tasks t
			LEFT JOIN users u ON u.id = t.assigned_to
			WHERE t.project_id = $1
			ORDER BY t.created_at, t.id
		`
	}

	rows, err := r.executor.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows, withAssignee)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, id string, update domain.TaskUpdate) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	if update.AssignedTo != nil && !validID(*update.AssignedTo) {
		return domain.NewNotFoundError("user with id " + *update.AssignedTo)
	}

	var dueDate any
	if update.DueDate != nil {
		dueDate = *update.DueDate
	}

	query := `
		UPDATE tasks
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    priority = COALESCE($4, priority),
		    status = COALESCE($5, status),
		    assigned_to = COALESCE($6, assigned_to),
		    due_date = COALESCE($7, due_date),
		    updated_at = $8
		WHERE id = $1
	`
	err := execOne(ctx, r.executor, query,
		id,
		optional(update.Title),
		optional(update.Description),
		optional(update.Priority),
		optional(update.Status),
		optional(update.AssignedTo),
		dueDate,
		time.Now(),
	)
	if err != nil {
		assignedTo := ""
		if update.AssignedTo != nil {
			assignedTo = *update.AssignedTo
		}
		return r.mapWriteError(err, assignedTo)
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	return execOne(ctx, r.executor, `DELETE FROM tasks WHERE id = $1`, id)
}

// mapWriteError различает отсутствующего исполнителя и отсутствующий проект
func (r *taskRepository) mapWriteError(err error, assignedTo string) error {
	constraint, ok := constraintViolation(err, pgForeignKeyViolation)
	if !ok {
		return err
	}
	if constraint == tasksAssignedToFK {
		return domain.NewNotFoundError("user with id " + assignedTo)
	}
	return repository.ErrNotFound
}

func scanTask(row rowScanner, withAssignee bool) (*domain.Task, error) {
	task := &domain.Task{}
	var priority, status string
	dest := []any{
		&task.ID,
		&task.ProjectID,
		&task.Title,
		&task.Description,
		&priority,
		&status,
		&task.AssignedTo,
		&task.DueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	}

	var assigneeID, assigneeName, assigneeEmail sql.NullString
	if withAssignee {
		dest = append(dest, &assigneeID, &assigneeName, &assigneeEmail)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	task.Priority = domain.Priority(priority)
	task.Status = domain.TaskStatus(status)
	if assigneeID.Valid {
		task.Assignee = &domain.UserRef{
			ID:    assigneeID.String,
			Name:  assigneeName.String,
			Email: assigneeEmail.String,
		}
	}
	return task, nil
}

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

type projectRepository struct {
	executor DBExecutor
}

func NewProjectRepository(executor DBExecutor) *projectRepository {
	return &projectRepository{executor: executor}
}

const projectColumns = `p.id, p.title, p.description, p.created_by, p.status, p.created_at, p.updated_at`

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (id, title, description, created_by, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING created_at, updated_at
	`

	id := uuid.NewString()
	err := r.executor.QueryRowContext(
		ctx,
		query,
		id,
		project.Title,
		project.Description,
		project.CreatedBy,
		string(project.Status),
		time.Now(),
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		if _, ok := constraintViolation(err, pgForeignKeyViolation); ok {
			return domain.NewNotFoundError("user with id " + project.CreatedBy)
		}
		return err
	}

	project.ID = id
	if project.AssignedMembers == nil {
		project.AssignedMembers = []string{}
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}

	query := `SELECT ` + projectColumns + ` FROM projects p WHERE p.id = $1`

	project, err := scanProject(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	members, err := r.GetMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	project.AssignedMembers = members

	return project, nil
}

// GetMembers возвращает участников проекта в порядке назначения
func (r *projectRepository) GetMembers(ctx context.Context, projectID string) ([]string, error) {
	query := `
		SELECT user_id
		FROM project_members
		WHERE project_id = $1
		ORDER BY assigned_at, user_id
	`

	rows, err := r.executor.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]string, 0)
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		members = append(members, userID)
	}

	return members, rows.Err()
}

func (r *projectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	projectsQuery := `SELECT ` + projectColumns + ` FROM projects p ORDER BY p.created_at, p.id`
	membersQuery := `
		SELECT project_id, user_id
		FROM project_members
		ORDER BY assigned_at, user_id
	`
	return r.listWithMembers(ctx, projectsQuery, membersQuery)
}

// ListByMember возвращает проекты, в которых пользователь назначен участником
func (r *projectRepository) ListByMember(ctx context.Context, userID string) ([]*domain.Project, error) {
	if !validID(userID) {
		return []*domain.Project{}, nil
	}

	projectsQuery := `
		SELECT ` + projectColumns + `
		FROM projects p
		JOIN project_members m ON m.project_id = p.id
		WHERE m.user_id = $1
		ORDER BY p.created_at, p.id
	`
	membersQuery := `
		SELECT pm.project_id, pm.user_id
		FROM project_members pm
		WHERE pm.project_id IN (SELECT project_id FROM project_members WHERE user_id = $1)
		ORDER BY pm.assigned_at, pm.user_id
	`
	return r.listWithMembers(ctx, projectsQuery, membersQuery, userID)
}

// listWithMembers выполняет запрос проектов и одним запросом подтягивает их участников
func (r *projectRepository) listWithMembers(ctx context.Context, projectsQuery, membersQuery string, args ...any) ([]*domain.Project, error) {
	rows, err := r.executor.QueryContext(ctx, projectsQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	byID := make(map[string]*domain.Project)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		project.AssignedMembers = []string{}
		projects = append(projects, project)
		byID[project.ID] = project
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(projects) == 0 {
		return projects, nil
	}

	memberRows, err := r.executor.QueryContext(ctx, membersQuery, args...)
	if err != nil {
		return nil, err
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var projectID, userID string
		if err := memberRows.Scan(&projectID, &userID); err != nil {
			return nil, err
		}
		if project, ok := byID[projectID]; ok {
			project.AssignedMembers = append(project.AssignedMembers, userID)
		}
	}

	return projects, memberRows.Err()
}

func (r *projectRepository) Update(ctx context.Context, id string, update domain.ProjectUpdate) error {
	if !validID(id) {
		return repository.ErrNotFound
	}

	query := `
		UPDATE projects
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    status = COALESCE($4, status),
		    updated_at = $5
		WHERE id = $1
	`
	return execOne(ctx, r.executor, query,
		id,
		optional(update.Title),
		optional(update.Description),
		optional(update.Status),
		time.Now(),
	)
}

// Delete удаляет проект; участники и задачи удаляются каскадно
func (r *projectRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	return execOne(ctx, r.executor, `DELETE FROM projects WHERE id = $1`, id)
}

// AddMember добавляет участника; повторное назначение возвращает domain.ErrDuplicateMember
func (r *projectRepository) AddMember(ctx context.Context, projectID, userID string) error {
	if !validID(projectID) {
		return repository.ErrNotFound
	}
	if !validID(userID) {
		return domain.NewNotFoundError("user with id " + userID)
	}

	_, err := r.executor.ExecContext(
		ctx,
		"INSERT INTO project_members (project_id, user_id, assigned_at) VALUES ($1, $2, $3)",
		projectID,
		userID,
		time.Now(),
	)
	if err == nil {
		return nil
	}

	if _, ok := constraintViolation(err, pgUniqueViolation); ok {
		return domain.ErrDuplicateMember
	}
	if constraint, ok := constraintViolation(err, pgForeignKeyViolation); ok {
		if constraint == "project_members_user_id_fkey" {
			return domain.NewNotFoundError("user with id " + userID)
		}
		return repository.ErrNotFound
	}
	return err
}

func scanProject(row rowScanner) (*domain.Project, error) {
	project := &domain.Project{}
	var status string
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.CreatedBy,
		&status,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	project.Status = domain.ProjectStatus(status)
	return project, nil
}

// optional превращает nil-указатель в SQL NULL для COALESCE
func optional[T ~string](v *T) any {
	if v == nil {
		return nil
	}
	return string(*v)
}

package service

import "github.com/bagdasarian/project-tracker/internal/domain"

// Action - действие над ресурсом, для которого принимается решение о доступе
type Action string

const (
	ActionCreateProject   Action = "CreateProject"
	ActionReadProjectList Action = "ReadProjectList"
	ActionReadProject     Action = "ReadProject"
	ActionUpdateProject   Action = "UpdateProject"
	ActionDeleteProject   Action = "DeleteProject"
	ActionAssignMember    Action = "AssignMember"
	ActionCreateTask      Action = "CreateTask"
	ActionReadTaskList    Action = "ReadTaskList"
	ActionReadTask        Action = "ReadTask"
	ActionUpdateTask      Action = "UpdateTask"
	ActionDeleteTask      Action = "DeleteTask"
	ActionReadUserList    Action = "ReadUserList"
	ActionUpdateUserRole  Action = "UpdateUserRole"
)

// Resource - снимок ресурса, к которому относится действие.
// Project нужен для действий уровня проекта, Task - для действий над задачей,
// MemberID - для AssignMember.
type Resource struct {
	Project  *domain.Project
	Task     *domain.Task
	MemberID string
}

// Authorize решает, может ли актор выполнить действие над ресурсом.
// Возвращает nil, ErrUnauthenticated, ErrForbidden, ErrDuplicateMember или ErrNotFound
// (для действий над проектом или задачей без снимка ресурса).
// Функция чистая: не обращается к хранилищу и не меняет аргументы.
func Authorize(actor domain.Actor, action Action, res Resource) error {
	if actor.ID == "" || !actor.Role.Valid() {
		return domain.ErrUnauthenticated
	}

	switch action {
	case ActionCreateProject, ActionDeleteProject, ActionDeleteTask, ActionUpdateUserRole:
		return allowIf(actor.IsAdmin())

	case ActionReadProjectList:
		// видимость списка задается ProjectListScope
		return nil

	case ActionUpdateProject, ActionReadUserList:
		return allowIf(actor.Role == domain.RoleAdmin || actor.Role == domain.RoleManager)

	case ActionReadProject, ActionCreateTask, ActionReadTaskList:
		if res.Project == nil {
			return domain.ErrNotFound
		}
		return allowIf(actor.IsAdmin() || res.Project.HasMember(actor.ID))

	case ActionAssignMember:
		if !actor.IsAdmin() {
			return domain.ErrForbidden
		}
		if res.Project != nil && res.MemberID != "" && res.Project.HasMember(res.MemberID) {
			return domain.ErrDuplicateMember
		}
		return nil

	case ActionReadTask:
		if res.Task == nil {
			return domain.ErrNotFound
		}
		return allowIf(actor.IsAdmin() || res.Task.AssignedTo == actor.ID)

	case ActionUpdateTask:
		if res.Task == nil {
			return domain.ErrNotFound
		}
		return allowIf(actor.IsAdmin() || actor.Role == domain.RoleManager || res.Task.AssignedTo == actor.ID)
	}

	return domain.ErrForbidden
}

func allowIf(ok bool) error {
	if ok {
		return nil
	}
	return domain.ErrForbidden
}

// ProjectScope описывает, какие проекты актор видит в списке
type ProjectScope struct {
	// All - актор видит все проекты
	All bool
	// MemberID - если All=false, видны только проекты, где этот пользователь участник
	MemberID string
}

// ProjectListScope возвращает область видимости списка проектов для актора
func ProjectListScope(actor domain.Actor) (ProjectScope, error) {
	if err := Authorize(actor, ActionReadProjectList, Resource{}); err != nil {
		return ProjectScope{}, err
	}
	switch actor.Role {
	case domain.RoleAdmin, domain.RoleManager:
		return ProjectScope{All: true}, nil
	default:
		return ProjectScope{MemberID: actor.ID}, nil
	}
}

// VisibleProjects отфильтровывает проекты, которые актор может видеть в списке.
// Порядок сохраняется.
func VisibleProjects(actor domain.Actor, projects []*domain.Project) ([]*domain.Project, error) {
	scope, err := ProjectListScope(actor)
	if err != nil {
		return nil, err
	}
	if scope.All {
		return projects, nil
	}

	visible := make([]*domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.HasMember(scope.MemberID) {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

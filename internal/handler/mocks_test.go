package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockUserService) Authenticate(ctx context.Context, token string) (domain.Actor, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Actor), args.Error(1)
}

func (m *MockUserService) Me(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, actor domain.Actor) ([]*domain.User, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateRole(ctx context.Context, actor domain.Actor, userID string, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, actor, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, actor domain.Actor, title, description string) (*domain.Project, error) {
	args := m.Called(ctx, actor, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, actor domain.Actor) ([]*domain.Project, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Project, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, actor domain.Actor, id string, update domain.ProjectUpdate) (*domain.Project, error) {
	args := m.Called(ctx, actor, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockProjectService) AssignMember(ctx context.Context, actor domain.Actor, projectID, memberID string) (*domain.Project, error) {
	args := m.Called(ctx, actor, projectID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, actor domain.Actor, task *domain.Task) (*domain.Task, error) {
	args := m.Called(ctx, actor, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) List(ctx context.Context, actor domain.Actor, projectID string) ([]*domain.Task, error) {
	args := m.Called(ctx, actor, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, actor domain.Actor, projectID, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, actor, projectID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, actor domain.Actor, projectID, taskID string, update domain.TaskUpdate) (*domain.Task, error) {
	args := m.Called(ctx, actor, projectID, taskID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, actor domain.Actor, projectID, taskID string) error {
	args := m.Called(ctx, actor, projectID, taskID)
	return args.Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) WeeklyStats(ctx context.Context, actor domain.Actor, projectID string) (*domain.WeeklyStats, error) {
	args := m.Called(ctx, actor, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyStats), args.Error(1)
}

func (m *MockStatsService) ProjectSummary(ctx context.Context, actor domain.Actor, projectID string) (*domain.ProjectSummary, error) {
	args := m.Called(ctx, actor, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectSummary), args.Error(1)
}

type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) GenerateDescription(ctx context.Context, title string) string {
	args := m.Called(ctx, title)
	return args.String(0)
}

func (m *MockAssistantService) SuggestPriority(ctx context.Context, title, description string) domain.Priority {
	args := m.Called(ctx, title, description)
	return args.Get(0).(domain.Priority)
}

func (m *MockAssistantService) GenerateSummary(ctx context.Context, actor domain.Actor, projectID string) (string, error) {
	args := m.Called(ctx, actor, projectID)
	return args.String(0), args.Error(1)
}

func (m *MockAssistantService) GenerateWeeklyReport(ctx context.Context, actor domain.Actor, projectID string) (string, error) {
	args := m.Called(ctx, actor, projectID)
	return args.String(0), args.Error(1)
}

type mockPinger struct {
	err error
}

func (p mockPinger) PingContext(context.Context) error {
	return p.err
}

//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/bagdasarian/project-tracker/internal/auth"
	"github.com/bagdasarian/project-tracker/internal/config"
	"github.com/bagdasarian/project-tracker/internal/db"
	"github.com/bagdasarian/project-tracker/internal/domain"
	pgrepo "github.com/bagdasarian/project-tracker/internal/repository/postgres"
	"github.com/bagdasarian/project-tracker/internal/service"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := postgres.Run(ctx, "postgres:17.7",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	// Накатываем встроенные миграции тем же кодом, что и при старте приложения
	require.NoError(t, db.Migrate(ctx, database), "не удалось применить миграции")

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

type services struct {
	users    service.UserService
	projects service.ProjectService
	tasks    service.TaskService
	stats    service.StatsService
}

func setupServices(t *testing.T) services {
	database := setupTestDB(t)

	userRepo := pgrepo.NewUserRepository(database)
	projectRepo := pgrepo.NewProjectRepository(database)
	taskRepo := pgrepo.NewTaskRepository(database)

	bootstrap := config.BootstrapConfig{
		AdminEmail:      "admin@example.com",
		AdminPassword:   "admin-pw",
		ManagerEmail:    "manager@example.com",
		ManagerPassword: "manager-pw",
	}

	return services{
		users:    service.NewUserService(userRepo, auth.NewTokenIssuer("test-secret", time.Hour), bootstrap, zap.NewNop()),
		projects: service.NewProjectService(projectRepo, userRepo, zap.NewNop()),
		tasks:    service.NewTaskService(taskRepo, projectRepo),
		stats:    service.NewStatsService(projectRepo, taskRepo),
	}
}

// register регистрирует пользователя и возвращает его актора
func register(t *testing.T, svc services, name, email, password string) domain.Actor {
	user, _, err := svc.users.Register(context.Background(), name, email, password)
	require.NoError(t, err)
	return domain.Actor{ID: user.ID, Role: user.Role}
}

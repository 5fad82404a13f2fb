package service

import (
	"context"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

type UserService interface {
	// Register создает пользователя и выдает токен; роль определяется bootstrap-учетками
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)

	// Login проверяет учетные данные и выдает токен
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	// Authenticate превращает токен в актора
	Authenticate(ctx context.Context, token string) (domain.Actor, error)

	// Me возвращает запись пользователя, от имени которого выполняется запрос
	Me(ctx context.Context, actor domain.Actor) (*domain.User, error)

	ListUsers(ctx context.Context, actor domain.Actor) ([]*domain.User, error)
	UpdateRole(ctx context.Context, actor domain.Actor, userID string, role domain.Role) (*domain.User, error)
}

// TokenIssuer выпускает и проверяет токены доступа
type TokenIssuer interface {
	Issue(actor domain.Actor) (string, error)
	Parse(token string) (domain.Actor, error)
}

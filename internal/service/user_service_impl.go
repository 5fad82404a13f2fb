package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/bagdasarian/project-tracker/internal/auth"
	"github.com/bagdasarian/project-tracker/internal/config"
	"github.com/bagdasarian/project-tracker/internal/domain"
	"github.com/bagdasarian/project-tracker/internal/repository"
)

type userService struct {
	userRepo  repository.UserRepository
	tokens    TokenIssuer
	bootstrap config.BootstrapConfig
	logger    *zap.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	tokens TokenIssuer,
	bootstrap config.BootstrapConfig,
	logger *zap.Logger,
) UserService {
	return &userService{
		userRepo:  userRepo,
		tokens:    tokens,
		bootstrap: bootstrap,
		logger:    logger,
	}
}

func (s *userService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	email = normalizeEmail(email)

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", domain.ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         s.bootstrapRole(email, password),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(domain.Actor{ID: user.ID, Role: user.Role})
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, token, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Actor{ID: user.ID, Role: user.Role})
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Authenticate(_ context.Context, token string) (domain.Actor, error) {
	if strings.TrimSpace(token) == "" {
		return domain.Actor{}, domain.ErrUnauthenticated
	}
	actor, err := s.tokens.Parse(token)
	if err != nil {
		s.logger.Debug("token rejected", zap.Error(err))
		return domain.Actor{}, domain.ErrUnauthenticated
	}
	return actor, nil
}

func (s *userService) Me(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	if actor.ID == "" || !actor.Role.Valid() {
		return nil, domain.ErrUnauthenticated
	}
	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("user with id " + actor.ID)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, actor domain.Actor) ([]*domain.User, error) {
	if err := Authorize(actor, ActionReadUserList, Resource{}); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx)
}

func (s *userService) UpdateRole(ctx context.Context, actor domain.Actor, userID string, role domain.Role) (*domain.User, error) {
	if err := Authorize(actor, ActionUpdateUserRole, Resource{}); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, domain.NewBadRequestError("role must be one of Admin, Manager, Member")
	}

	err := s.userRepo.SetRole(ctx, userID, role)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("user with id " + userID)
		}
		return nil, err
	}

	updated, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("user with id " + userID)
		}
		return nil, err
	}

	s.logger.Info("user role changed",
		zap.String("user_id", userID),
		zap.String("role", string(role)),
		zap.String("by", actor.ID),
	)
	return updated, nil
}

// bootstrapRole выдает Admin/Manager только при точном совпадении email и пароля
func (s *userService) bootstrapRole(email, password string) domain.Role {
	if matchesBootstrap(email, password, s.bootstrap.AdminEmail, s.bootstrap.AdminPassword) {
		return domain.RoleAdmin
	}
	if matchesBootstrap(email, password, s.bootstrap.ManagerEmail, s.bootstrap.ManagerPassword) {
		return domain.RoleManager
	}
	return domain.RoleMember
}

func matchesBootstrap(email, password, wantEmail, wantPassword string) bool {
	if wantEmail == "" || wantPassword == "" {
		return false
	}
	return email == normalizeEmail(wantEmail) && password == wantPassword
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

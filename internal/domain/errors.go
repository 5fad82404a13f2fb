package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeBadRequest         = "BAD_REQUEST"
	CodeUserExists         = "USER_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
)

var (
	// ErrUnauthenticated - нет актора или токен невалиден
	ErrUnauthenticated = &DomainError{
		Code:    CodeUnauthenticated,
		Message: "authentication required",
	}

	// ErrForbidden - актор аутентифицирован, но правило запрещает действие
	ErrForbidden = &DomainError{
		Code:    CodeForbidden,
		Message: "access denied",
	}

	// ErrDuplicateMember - участник уже назначен на проект
	ErrDuplicateMember = &DomainError{
		Code:    CodeConflict,
		Message: "member already assigned to this project",
	}

	// ErrUserExists - пользователь с таким email уже зарегистрирован
	ErrUserExists = &DomainError{
		Code:    CodeUserExists,
		Message: "user already exists",
	}

	// ErrInvalidCredentials - неверный email или пароль
	ErrInvalidCredentials = &DomainError{
		Code:    CodeInvalidCredentials,
		Message: "invalid credentials",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewBadRequestError создает ошибку BAD_REQUEST с описанием проблемы
func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}

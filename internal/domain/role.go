package domain

import "strings"

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleMember  Role = "Member"
)

// ParseRole разбирает роль без учета регистра; неизвестная роль возвращает false
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, true
	case "manager":
		return RoleManager, true
	case "member":
		return RoleMember, true
	default:
		return "", false
	}
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleMember
}

// Actor - аутентифицированный субъект запроса
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

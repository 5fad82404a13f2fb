package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// UserRef - краткое представление пользователя для join'ов (assignee, участники проекта)
type UserRef struct {
	ID    string
	Name  string
	Email string
}

func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}

package domain

import (
	"slices"
	"time"
)

type Project struct {
	ID              string
	Title           string
	Description     string
	CreatedBy       string
	AssignedMembers []string
	Status          ProjectStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "Active"
	ProjectStatusCompleted ProjectStatus = "Completed"
)

func (s ProjectStatus) Valid() bool {
	return s == ProjectStatusActive || s == ProjectStatusCompleted
}

// HasMember проверяет, назначен ли пользователь на проект
func (p *Project) HasMember(userID string) bool {
	return slices.Contains(p.AssignedMembers, userID)
}

// ProjectUpdate - изменяемые поля проекта; nil означает "не менять"
type ProjectUpdate struct {
	Title       *string
	Description *string
	Status      *ProjectStatus
}

package domain

import "time"

type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Priority    Priority
	Status      TaskStatus
	AssignedTo  string
	// Assignee заполняется только когда хранилище запрошено с withAssignee
	Assignee  *UserRef
	DueDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "Todo"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusDone       TaskStatus = "Done"
)

func (s TaskStatus) Valid() bool {
	return s == TaskStatusTodo || s == TaskStatusInProgress || s == TaskStatusDone
}

// TaskUpdate - изменяемые поля задачи; nil означает "не менять"
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *TaskStatus
	AssignedTo  *string
	DueDate     *time.Time
}

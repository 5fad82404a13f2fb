package handler

import "time"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type AssignMemberRequest struct {
	UserID string `json:"userId"`
}

type ProjectResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CreatedBy       string    `json:"createdBy"`
	AssignedMembers []string  `json:"assignedMembers"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssignedTo  string     `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	AssignedTo  *string    `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate"`
}

type UserRefResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TaskResponse struct {
	ID          string           `json:"id"`
	ProjectID   string           `json:"projectId"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Priority    string           `json:"priority"`
	Status      string           `json:"status"`
	AssignedTo  string           `json:"assignedTo"`
	Assignee    *UserRefResponse `json:"assignee,omitempty"`
	DueDate     time.Time        `json:"dueDate"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type PriorityBreakdownResponse struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type WeeklyStatsResponse struct {
	ProjectTitle      string                    `json:"projectTitle"`
	TasksCompleted    int                       `json:"tasksCompleted"`
	OverdueTasks      int                       `json:"overdueTasks"`
	TopContributors   string                    `json:"topContributors"`
	PriorityBreakdown PriorityBreakdownResponse `json:"priorityBreakdown"`
}

type GenerateDescriptionRequest struct {
	Title string `json:"title"`
}

type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}

type SuggestPriorityRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SuggestPriorityResponse struct {
	Priority string `json:"priority"`
}

type ProjectIDRequest struct {
	ProjectID string `json:"projectId"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type WeeklyReportResponse struct {
	Report string `json:"report"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

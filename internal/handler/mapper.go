package handler

import (
	"github.com/bagdasarian/project-tracker/internal/domain"
)

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func domainUsersToHTTP(users []*domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, domainUserToHTTP(user))
	}
	return result
}

func domainProjectToHTTP(project *domain.Project) ProjectResponse {
	members := project.AssignedMembers
	if members == nil {
		members = []string{}
	}

	return ProjectResponse{
		ID:              project.ID,
		Title:           project.Title,
		Description:     project.Description,
		CreatedBy:       project.CreatedBy,
		AssignedMembers: members,
		Status:          string(project.Status),
		CreatedAt:       project.CreatedAt,
		UpdatedAt:       project.UpdatedAt,
	}
}

func domainProjectsToHTTP(projects []*domain.Project) []ProjectResponse {
	result := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		result = append(result, domainProjectToHTTP(project))
	}
	return result
}

func httpProjectUpdateToDomain(req UpdateProjectRequest) domain.ProjectUpdate {
	update := domain.ProjectUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		update.Status = &status
	}
	return update
}

func domainTaskToHTTP(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		AssignedTo:  task.AssignedTo,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.Assignee != nil {
		resp.Assignee = &UserRefResponse{
			ID:    task.Assignee.ID,
			Name:  task.Assignee.Name,
			Email: task.Assignee.Email,
		}
	}
	return resp
}

func domainTasksToHTTP(tasks []*domain.Task) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, domainTaskToHTTP(task))
	}
	return result
}

func httpTaskToDomain(projectID string, req CreateTaskRequest) *domain.Task {
	task := &domain.Task{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.Priority(req.Priority),
		Status:      domain.TaskStatus(req.Status),
		AssignedTo:  req.AssignedTo,
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	return task
}

func httpTaskUpdateToDomain(req UpdateTaskRequest) domain.TaskUpdate {
	update := domain.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		update.Priority = &priority
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		update.Status = &status
	}
	return update
}

func domainWeeklyStatsToHTTP(stats *domain.WeeklyStats) WeeklyStatsResponse {
	return WeeklyStatsResponse{
		ProjectTitle:    stats.ProjectTitle,
		TasksCompleted:  stats.CompletedThisWeek,
		OverdueTasks:    stats.Overdue,
		TopContributors: stats.TopContributors,
		PriorityBreakdown: PriorityBreakdownResponse{
			High:   stats.PriorityBreakdown.High,
			Medium: stats.PriorityBreakdown.Medium,
			Low:    stats.PriorityBreakdown.Low,
		},
	}
}

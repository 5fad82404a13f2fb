package service

import (
	"fmt"
	"strings"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

const assistantRole = "You are a project management assistant."

func descriptionPrompt(title string) string {
	return fmt.Sprintf(
		"You are a helpful project management assistant. Generate a clear, concise, and actionable task description (2-3 sentences) for this task: %q",
		title,
	)
}

func priorityPrompt(title, description string) string {
	return fmt.Sprintf(
		"%s Based on the task title %q and its description %q, suggest a priority level (Low, Medium, High) for this task. "+
			"Consider factors like urgency, impact, and dependencies. Answer with a single word.",
		assistantRole, title, description,
	)
}

func summaryPrompt(summary *domain.ProjectSummary) string {
	tasks := make([]string, 0, len(summary.Tasks))
	for _, t := range summary.Tasks {
		tasks = append(tasks, fmt.Sprintf("Task: %q, Status: %q", t.Title, t.Status))
	}
	return fmt.Sprintf(
		"%s Summarize the current status of the project %q based on its description and tasks. "+
			"The project description is: %q. The tasks are: %s. "+
			"Provide a concise summary highlighting key points and overall progress.",
		assistantRole, summary.ProjectTitle, summary.ProjectDescription, strings.Join(tasks, "; "),
	)
}

func weeklyReportPrompt(stats *domain.WeeklyStats) string {
	return fmt.Sprintf(
		"%s Generate a weekly report for the project %q. This week, %d tasks were completed. "+
			"There are %d overdue tasks. The top contributors this week are: %s. "+
			"The priority breakdown of tasks is: High - %d, Medium - %d, Low - %d. "+
			"Provide a concise summary of the project's current status and any recommendations for the upcoming week.",
		assistantRole,
		stats.ProjectTitle,
		stats.CompletedThisWeek,
		stats.Overdue,
		stats.TopContributors,
		stats.PriorityBreakdown.High,
		stats.PriorityBreakdown.Medium,
		stats.PriorityBreakdown.Low,
	)
}

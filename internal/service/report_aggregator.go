package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

const (
	ReportWindow       = 7 * 24 * time.Hour
	maxTopContributors = 3
	noContributors     = "No contributors"
	unknownContributor = "Unknown"
)

// AggregateWeeklyStats сводит задачи проекта в статистику недельного отчета.
// Задачи должны быть загружены с assignee, иначе все исполнители будут "Unknown".
func AggregateWeeklyStats(projectTitle string, tasks []*domain.Task, now time.Time) domain.WeeklyStats {
	completed := CompletedSince(tasks, now.Add(-ReportWindow))

	return domain.WeeklyStats{
		ProjectTitle:      projectTitle,
		CompletedThisWeek: len(completed),
		Overdue:           CountOverdue(tasks, now),
		PriorityBreakdown: BreakdownByPriority(tasks),
		TopContributors:   TopContributors(completed),
	}
}

// CompletedSince возвращает задачи в статусе Done, обновленные не раньше since
func CompletedSince(tasks []*domain.Task, since time.Time) []*domain.Task {
	completed := make([]*domain.Task, 0)
	for _, t := range tasks {
		if t.Status == domain.TaskStatusDone && !t.UpdatedAt.Before(since) {
			completed = append(completed, t)
		}
	}
	return completed
}

// CountOverdue считает незавершенные задачи с прошедшим сроком
func CountOverdue(tasks []*domain.Task, now time.Time) int {
	count := 0
	for _, t := range tasks {
		if t.Status != domain.TaskStatusDone && t.DueDate.Before(now) {
			count++
		}
	}
	return count
}

// BreakdownByPriority считает задачи по приоритету по всему набору.
// Задача без валидного приоритета считается Medium, приоритетом по умолчанию.
func BreakdownByPriority(tasks []*domain.Task) domain.PriorityBreakdown {
	var b domain.PriorityBreakdown
	for _, t := range tasks {
		switch t.Priority {
		case domain.PriorityHigh:
			b.High++
		case domain.PriorityLow:
			b.Low++
		default:
			b.Medium++
		}
	}
	return b
}

// TopContributors группирует завершенные задачи по имени исполнителя и
// возвращает до трех лидеров в виде "Name (N tasks)", разделенных ", ".
// При равенстве порядок определяется первым появлением имени.
func TopContributors(completed []*domain.Task) string {
	type contributor struct {
		name  string
		count int
	}

	index := make(map[string]int)
	contributors := make([]contributor, 0)
	for _, t := range completed {
		name := contributorName(t)
		i, ok := index[name]
		if !ok {
			index[name] = len(contributors)
			contributors = append(contributors, contributor{name: name, count: 1})
			continue
		}
		contributors[i].count++
	}

	if len(contributors) == 0 {
		return noContributors
	}

	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].count > contributors[j].count
	})

	if len(contributors) > maxTopContributors {
		contributors = contributors[:maxTopContributors]
	}

	parts := make([]string, 0, len(contributors))
	for _, c := range contributors {
		parts = append(parts, fmt.Sprintf("%s (%d tasks)", c.name, c.count))
	}
	return strings.Join(parts, ", ")
}

func contributorName(t *domain.Task) string {
	if t.Assignee == nil || t.Assignee.Name == "" {
		return unknownContributor
	}
	return t.Assignee.Name
}

// SummarizeProject приводит проект и его задачи к форме для краткой сводки
func SummarizeProject(project *domain.Project, tasks []*domain.Task) domain.ProjectSummary {
	items := make([]domain.TaskSummaryItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, domain.TaskSummaryItem{Title: t.Title, Status: t.Status})
	}

	return domain.ProjectSummary{
		ProjectTitle:       project.Title,
		ProjectDescription: project.Description,
		Tasks:              items,
	}
}

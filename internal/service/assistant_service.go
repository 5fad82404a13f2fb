package service

import (
	"context"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

// AssistantService генерирует тексты по данным задач и проектов.
// Сбои генератора не возвращаются наружу: вместо них отдается fallback-строка.
type AssistantService interface {
	GenerateDescription(ctx context.Context, title string) string
	SuggestPriority(ctx context.Context, title, description string) domain.Priority
	GenerateSummary(ctx context.Context, actor domain.Actor, projectID string) (string, error)
	GenerateWeeklyReport(ctx context.Context, actor domain.Actor, projectID string) (string, error)
}

// TextGenerator - внешний генератор текста
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

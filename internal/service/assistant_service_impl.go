package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bagdasarian/project-tracker/internal/domain"
)

const (
	fallbackEmptyDescription = "Complete the task as described."
	fallbackSummary          = "Project summary not available."
	fallbackWeeklyReport     = "Weekly report not available."
)

type assistantService struct {
	generator TextGenerator
	stats     StatsService
	timeout   time.Duration
	logger    *zap.Logger
}

// NewAssistantService создает AssistantService; timeout ограничивает каждый вызов генератора
func NewAssistantService(generator TextGenerator, stats StatsService, timeout time.Duration, logger *zap.Logger) AssistantService {
	return &assistantService{
		generator: generator,
		stats:     stats,
		timeout:   timeout,
		logger:    logger,
	}
}

func (s *assistantService) GenerateDescription(ctx context.Context, title string) string {
	text, err := s.generate(ctx, "description", descriptionPrompt(title))
	if err != nil {
		return "Complete the task: " + title + ". Ensure quality standards are met."
	}
	if text == "" {
		return fallbackEmptyDescription
	}
	return text
}

// SuggestPriority приводит ответ генератора к Low/Medium/High, все остальное - Medium
func (s *assistantService) SuggestPriority(ctx context.Context, title, description string) domain.Priority {
	text, err := s.generate(ctx, "priority", priorityPrompt(title, description))
	if err != nil {
		return domain.PriorityMedium
	}
	return normalizePriority(text)
}

// GenerateSummary требует доступа на чтение проекта; ошибки доступа и поиска возвращаются как есть
func (s *assistantService) GenerateSummary(ctx context.Context, actor domain.Actor, projectID string) (string, error) {
	summary, err := s.stats.ProjectSummary(ctx, actor, projectID)
	if err != nil {
		return "", err
	}

	text, err := s.generate(ctx, "summary", summaryPrompt(summary))
	if err != nil || text == "" {
		return fallbackSummary, nil
	}
	return text, nil
}

func (s *assistantService) GenerateWeeklyReport(ctx context.Context, actor domain.Actor, projectID string) (string, error) {
	stats, err := s.stats.WeeklyStats(ctx, actor, projectID)
	if err != nil {
		return "", err
	}

	text, err := s.generate(ctx, "weekly_report", weeklyReportPrompt(stats))
	if err != nil || text == "" {
		return fallbackWeeklyReport, nil
	}
	return text, nil
}

func (s *assistantService) generate(ctx context.Context, kind, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("text generation failed", zap.String("kind", kind), zap.Error(err))
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func normalizePriority(text string) domain.Priority {
	answer := strings.Trim(strings.ToLower(strings.TrimSpace(text)), ".!\"'")
	switch answer {
	case "high":
		return domain.PriorityHigh
	case "medium":
		return domain.PriorityMedium
	case "low":
		return domain.PriorityLow
	}
	return domain.PriorityMedium
}

package domain

type PriorityBreakdown struct {
	High   int
	Medium int
	Low    int
}

func (b PriorityBreakdown) Total() int {
	return b.High + b.Medium + b.Low
}

// WeeklyStats - статистика для недельного отчета по проекту
type WeeklyStats struct {
	ProjectTitle      string
	CompletedThisWeek int
	Overdue           int
	PriorityBreakdown PriorityBreakdown
	TopContributors   string
}

type TaskSummaryItem struct {
	Title  string
	Status TaskStatus
}

// ProjectSummary - нормализованные данные проекта для краткой сводки
type ProjectSummary struct {
	ProjectTitle       string
	ProjectDescription string
	Tasks              []TaskSummaryItem
}

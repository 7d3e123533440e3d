package app

import "time"

type WorkloadRequest struct {
	Now        *time.Time
	ClassScope []string
	Estimate   bool
}

func NewWorkloadRequest() WorkloadRequest {
	return WorkloadRequest{Estimate: true}
}

type ClassWorkloadView struct {
	ClassID             string
	ClassName           string
	PendingTasks        int
	EstimatedHours      float64
	AvgDifficulty       float64
	RecommendedDailyMin int
	PriorityScore       float64
	UpcomingDeadlines   []string
}

type WorkloadEstimateView struct {
	EstimatedTotalHours   float64
	StressLevel           string
	RecommendedDailyHours float64
	PeakWorkloadDates     []string
	Recommendations       []string
	OverloadRisk          string
	DeadlineConflicts     []string
	BurnoutRisk           float64
}

type WorkloadResponse struct {
	GeneratedAt time.Time
	Classes     []ClassWorkloadView
	Estimate    *WorkloadEstimateView
	Warnings    []string
}

package engine

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// RiskLabel grades overload and stress on a coarse scale.
type RiskLabel string

const (
	RiskLow      RiskLabel = "low"
	RiskModerate RiskLabel = "moderate"
	RiskHigh     RiskLabel = "high"
)

// WorkloadEstimate is the estimation hook's output shape: either the
// external estimator's, validated, or the deterministic fallback below.
type WorkloadEstimate struct {
	EstimatedTotalHours   float64
	StressLevel           RiskLabel
	RecommendedDailyHours float64
	PeakWorkloadDates     []time.Time
	Recommendations       []string
	OverloadRisk          RiskLabel
	DeadlineConflicts     int
	BurnoutRisk           float64 // 0-100
}

// HeuristicEstimate is the deterministic fallback used whenever the
// external estimator is absent or fails: plain hour summation plus
// ratio-based risk scoring.
func HeuristicEstimate(workload []ClassWorkload, dailyLimitHours float64) WorkloadEstimate {
	est := WorkloadEstimate{
		StressLevel:  RiskLow,
		OverloadRisk: RiskLow,
	}

	deadlinesByDay := make(map[string]int)
	for _, w := range workload {
		est.EstimatedTotalHours += w.EstimatedHours
		for _, d := range w.UpcomingDeadlines {
			deadlinesByDay[dayKey(dateOnly(d))]++
		}
	}
	est.RecommendedDailyHours = round1(est.EstimatedTotalHours / planningWindowDays)

	var peakKeys []string
	for key, n := range deadlinesByDay {
		if n >= 2 {
			est.DeadlineConflicts += n
			peakKeys = append(peakKeys, key)
		}
	}
	sort.Strings(peakKeys)
	for _, key := range peakKeys {
		d, _ := time.Parse("2006-01-02", key)
		est.PeakWorkloadDates = append(est.PeakWorkloadDates, d)
	}

	// Risk from the ratio of needed pace to allowed pace.
	ratio := 0.0
	if dailyLimitHours > 0 {
		ratio = est.RecommendedDailyHours / dailyLimitHours
	} else if est.RecommendedDailyHours > 0 {
		ratio = 2
	}
	switch {
	case ratio > 1:
		est.OverloadRisk = RiskHigh
		est.StressLevel = RiskHigh
	case ratio > 0.7:
		est.OverloadRisk = RiskModerate
		est.StressLevel = RiskModerate
	}
	if est.DeadlineConflicts >= 2 && est.StressLevel == RiskLow {
		est.StressLevel = RiskModerate
	}

	// Logistic burnout curve over the pace ratio.
	est.BurnoutRisk = math.Round(1000/(1+math.Exp(-4*(ratio-1)))) / 10

	switch est.OverloadRisk {
	case RiskHigh:
		est.Recommendations = append(est.Recommendations,
			fmt.Sprintf("Workload needs %.1fh/day but the daily limit is %.1fh; consider raising the limit or deferring low-priority tasks", est.RecommendedDailyHours, dailyLimitHours))
	case RiskModerate:
		est.Recommendations = append(est.Recommendations,
			"Workload is near capacity; protect the configured study windows")
	default:
		est.Recommendations = append(est.Recommendations,
			"Workload fits comfortably within the daily limit")
	}
	if len(est.PeakWorkloadDates) > 0 {
		est.Recommendations = append(est.Recommendations,
			fmt.Sprintf("%d day(s) have clustered deadlines; start the affected tasks early", len(est.PeakWorkloadDates)))
	}
	return est
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

package intelligence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexmoren/studyplan/internal/engine"
	"github.com/alexmoren/studyplan/internal/llm"
)

// EstimateService grades workload stress and produces study advice.
// Every method degrades to the deterministic heuristic when the LLM is
// unavailable or returns output that fails validation, so callers never
// see an estimate-shaped error.
type EstimateService interface {
	// EstimateWorkload returns a workload estimate, LLM-refined when possible.
	EstimateWorkload(ctx context.Context, workload []engine.ClassWorkload, dailyLimitHours float64) (*engine.WorkloadEstimate, error)

	// StudyAdvice returns schedule-adjustment suggestions for an estimate.
	StudyAdvice(ctx context.Context, workload []engine.ClassWorkload, est engine.WorkloadEstimate) ([]string, error)
}

type estimateService struct {
	client llm.Client
}

// NewEstimateService creates an EstimateService backed by an LLM client.
// A nil client always uses the heuristic path.
func NewEstimateService(client llm.Client) EstimateService {
	return &estimateService{client: client}
}

// llmEstimate is the refinement payload the model must produce. The
// numeric grounding (hours, pacing, peak dates) always stays heuristic;
// the model only grades stress and phrases the advice.
type llmEstimate struct {
	StressLevel     string   `json:"stress_level"`
	BurnoutRisk     float64  `json:"burnout_risk"`
	Recommendations []string `json:"recommendations"`
}

type llmAdvice struct {
	Recommendations []string `json:"recommendations"`
}

type estimateInput struct {
	Classes         []engine.ClassWorkload `json:"classes"`
	DailyLimitHours float64                `json:"daily_limit_hours"`
}

func (s *estimateService) EstimateWorkload(ctx context.Context, workload []engine.ClassWorkload, dailyLimitHours float64) (*engine.WorkloadEstimate, error) {
	base := engine.HeuristicEstimate(workload, dailyLimitHours)
	if s.client == nil {
		return &base, nil
	}

	input, err := json.MarshalIndent(estimateInput{Classes: workload, DailyLimitHours: dailyLimitHours}, "", "  ")
	if err != nil {
		return &base, nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskEstimate,
		SystemPrompt: estimateSystemPrompt,
		UserPrompt:   "Here is the workload summary:\n\n" + string(input),
	})
	if err != nil {
		return &base, nil
	}

	refined, err := llm.ExtractJSON[llmEstimate](resp.Text, validateEstimate)
	if err != nil {
		return &base, nil
	}

	base.StressLevel = engine.RiskLabel(refined.StressLevel)
	base.BurnoutRisk = refined.BurnoutRisk
	base.Recommendations = refined.Recommendations
	return &base, nil
}

func (s *estimateService) StudyAdvice(ctx context.Context, workload []engine.ClassWorkload, est engine.WorkloadEstimate) ([]string, error) {
	if s.client == nil {
		return est.Recommendations, nil
	}

	prompt := struct {
		Classes  []engine.ClassWorkload  `json:"classes"`
		Estimate engine.WorkloadEstimate `json:"estimate"`
	}{Classes: workload, Estimate: est}

	input, err := json.MarshalIndent(prompt, "", "  ")
	if err != nil {
		return est.Recommendations, nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRecommend,
		SystemPrompt: adviceSystemPrompt,
		UserPrompt:   string(input),
	})
	if err != nil {
		return est.Recommendations, nil
	}

	advice, err := llm.ExtractJSON[llmAdvice](resp.Text, validateAdvice)
	if err != nil {
		return est.Recommendations, nil
	}
	return advice.Recommendations, nil
}

func validateEstimate(e llmEstimate) error {
	switch engine.RiskLabel(e.StressLevel) {
	case engine.RiskLow, engine.RiskModerate, engine.RiskHigh:
	default:
		return fmt.Errorf("unknown stress level %q", e.StressLevel)
	}
	if e.BurnoutRisk < 0 || e.BurnoutRisk > 100 {
		return fmt.Errorf("burnout risk %v out of range", e.BurnoutRisk)
	}
	return validateAdvice(llmAdvice{Recommendations: e.Recommendations})
}

func validateAdvice(a llmAdvice) error {
	if len(a.Recommendations) == 0 || len(a.Recommendations) > 5 {
		return fmt.Errorf("expected 1-5 recommendations, got %d", len(a.Recommendations))
	}
	for _, r := range a.Recommendations {
		if r == "" {
			return fmt.Errorf("empty recommendation")
		}
	}
	return nil
}

package app

import "context"

// PlanUseCase is the planning contract the service layer fulfills.
type PlanUseCase interface {
	GeneratePlan(ctx context.Context, req GeneratePlanRequest) (*GeneratePlanResponse, error)
}

// WorkloadUseCase is the workload-analysis contract.
type WorkloadUseCase interface {
	AnalyzeWorkload(ctx context.Context, req WorkloadRequest) (*WorkloadResponse, error)
}

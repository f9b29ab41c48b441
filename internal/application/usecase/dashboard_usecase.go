package usecase

import (
	"context"

	"github.com/diillson/aws-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-dashboard-go/internal/shared/types"
)

// DashboardUseCase handles the main dashboard functionality: it validates the
// request credentials and delegates to the AWS repository, tagging provider
// failures so the HTTP layer can tell them apart from validation failures.
type DashboardUseCase struct {
	awsRepo repository.AWSRepository
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(awsRepo repository.AWSRepository) *DashboardUseCase {
	return &DashboardUseCase{awsRepo: awsRepo}
}

// GetResourceSummary retorna as contagens de instâncias EC2 e buckets S3.
func (uc *DashboardUseCase) GetResourceSummary(ctx context.Context, creds types.Credentials) (entity.ResourceSummary, error) {
	if err := creds.Validate(); err != nil {
		return entity.ResourceSummary{}, err
	}
	summary, err := uc.awsRepo.GetResourceSummary(ctx, creds)
	if err != nil {
		return entity.ResourceSummary{}, &types.ProviderError{Err: err}
	}
	return summary, nil
}

// GetCostBreakdown retorna o custo dos últimos 30 dias agrupado por serviço.
func (uc *DashboardUseCase) GetCostBreakdown(ctx context.Context, creds types.Credentials) (entity.CostBreakdown, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	costs, err := uc.awsRepo.GetCostBreakdown(ctx, creds)
	if err != nil {
		return nil, &types.ProviderError{Err: err}
	}
	return costs, nil
}

// GetCostTrend retorna a série mensal de custos dos últimos seis meses.
func (uc *DashboardUseCase) GetCostTrend(ctx context.Context, creds types.Credentials) (entity.CostTrend, error) {
	if err := creds.Validate(); err != nil {
		return entity.CostTrend{}, err
	}
	trend, err := uc.awsRepo.GetCostTrend(ctx, creds)
	if err != nil {
		return entity.CostTrend{}, &types.ProviderError{Err: err}
	}
	return trend, nil
}

// GetBudgets retorna os budgets configurados na conta.
func (uc *DashboardUseCase) GetBudgets(ctx context.Context, creds types.Credentials) ([]entity.BudgetInfo, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	budgets, err := uc.awsRepo.GetBudgets(ctx, creds)
	if err != nil {
		return nil, &types.ProviderError{Err: err}
	}
	return budgets, nil
}

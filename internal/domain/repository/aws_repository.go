package repository

import (
	"context"

	"github.com/diillson/aws-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-dashboard-go/internal/shared/types"
)

// AWSRepository defines the interface for AWS API interactions.
//
// Every operation opens its own session from the credentials it receives;
// nothing is cached or shared between calls. The SDK defers authentication to
// first use, so invalid keys only fail once a service call is issued.
type AWSRepository interface {
	// Resource Operations
	GetResourceSummary(ctx context.Context, creds types.Credentials) (entity.ResourceSummary, error)

	// Cost Operations
	GetCostBreakdown(ctx context.Context, creds types.Credentials) (entity.CostBreakdown, error)
	GetCostTrend(ctx context.Context, creds types.Credentials) (entity.CostTrend, error)

	// Budget Operations
	GetBudgets(ctx context.Context, creds types.Credentials) ([]entity.BudgetInfo, error)
}

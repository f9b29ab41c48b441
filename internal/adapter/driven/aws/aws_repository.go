package aws

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/aws-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-dashboard-go/internal/shared/types"
)

const dateLayout = "2006-01-02"

// costWindowDays é a janela móvel usada pelo breakdown de custo.
const costWindowDays = 30

// AWSRepositoryImpl implementa o AWSRepository com sessões por request.
type AWSRepositoryImpl struct {
	newClients func(ctx context.Context, creds types.Credentials) (*ClientSet, error)
	now        func() time.Time
}

// NewAWSRepository cria uma nova implementação do AWSRepository.
func NewAWSRepository() repository.AWSRepository {
	return &AWSRepositoryImpl{
		newClients: newClientSet,
		now:        time.Now,
	}
}

// GetResourceSummary counts EC2 instances and S3 buckets with one listing
// call each. No pagination: contas muito grandes refletem apenas a primeira
// página, por decisão de escopo.
func (r *AWSRepositoryImpl) GetResourceSummary(ctx context.Context, creds types.Credentials) (entity.ResourceSummary, error) {
	clients, err := r.newClients(ctx, creds)
	if err != nil {
		return entity.ResourceSummary{}, err
	}

	instances, err := clients.EC2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{})
	if err != nil {
		return entity.ResourceSummary{}, err
	}

	buckets, err := clients.S3.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return entity.ResourceSummary{}, err
	}

	return entity.ResourceSummary{
		EC2Instances: countInstances(instances.Reservations),
		S3Buckets:    len(buckets.Buckets),
	}, nil
}

// GetCostBreakdown returns the unblended cost of the trailing 30 days grouped
// by service, rounded to two decimal places.
func (r *AWSRepositoryImpl) GetCostBreakdown(ctx context.Context, creds types.Credentials) (entity.CostBreakdown, error) {
	clients, err := r.newClients(ctx, creds)
	if err != nil {
		return nil, err
	}

	// Janela [hoje-30d, hoje); o End é exclusivo na convenção do Cost Explorer.
	end := r.now().UTC()
	start := end.AddDate(0, 0, -costWindowDays)

	result, err := clients.CostExplorer.GetCostAndUsage(ctx, &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(start.Format(dateLayout)),
			End:   aws.String(end.Format(dateLayout)),
		},
		Granularity: ceTypes.GranularityMonthly,
		Metrics:     []string{"UnblendedCost"},
		GroupBy: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("SERVICE")},
		},
	})
	if err != nil {
		return nil, err
	}

	return costsFromResult(result), nil
}

// GetCostTrend returns the monthly cost series for the past six months,
// together with the caller's account ID.
func (r *AWSRepositoryImpl) GetCostTrend(ctx context.Context, creds types.Credentials) (entity.CostTrend, error) {
	clients, err := r.newClients(ctx, creds)
	if err != nil {
		return entity.CostTrend{}, err
	}

	today := r.now().UTC()
	startDate := today.AddDate(0, -6, 0)
	startDate = time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	result, err := clients.CostExplorer.GetCostAndUsage(ctx, &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(startDate.Format(dateLayout)),
			End:   aws.String(today.Format(dateLayout)),
		},
		Granularity: ceTypes.GranularityMonthly,
		Metrics:     []string{"UnblendedCost"},
	})
	if err != nil {
		return entity.CostTrend{}, err
	}

	trend := entity.CostTrend{MonthlyCosts: []entity.MonthlyCost{}}

	// A identidade é informativa; falha aqui não derruba a série de custos.
	if identity, err := clients.STS.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{}); err == nil {
		trend.AccountID = aws.ToString(identity.Account)
	}

	for _, period := range result.ResultsByTime {
		if period.TimePeriod == nil || period.TimePeriod.Start == nil {
			continue
		}
		month, _ := time.Parse(dateLayout, *period.TimePeriod.Start)

		var cost float64
		if val, ok := period.Total["UnblendedCost"]; ok && val.Amount != nil {
			cost, _ = strconv.ParseFloat(*val.Amount, 64)
		}

		trend.MonthlyCosts = append(trend.MonthlyCosts, entity.MonthlyCost{
			Month: month.Format("Jan 2006"),
			Cost:  cost,
		})
	}

	return trend, nil
}

// GetBudgets lists the account's AWS Budgets with limit, actual and forecast
// amounts. Budgets sem spend calculado ficam com os campos zerados.
func (r *AWSRepositoryImpl) GetBudgets(ctx context.Context, creds types.Credentials) ([]entity.BudgetInfo, error) {
	clients, err := r.newClients(ctx, creds)
	if err != nil {
		return nil, err
	}

	identity, err := clients.STS.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, err
	}

	result, err := clients.Budgets.DescribeBudgets(ctx, &budgets.DescribeBudgetsInput{
		AccountId: identity.Account,
	})
	if err != nil {
		return nil, err
	}

	budgetsData := []entity.BudgetInfo{}
	for _, budget := range result.Budgets {
		b := entity.BudgetInfo{Name: aws.ToString(budget.BudgetName)}
		if budget.BudgetLimit != nil && budget.BudgetLimit.Amount != nil {
			b.Limit, _ = strconv.ParseFloat(*budget.BudgetLimit.Amount, 64)
		}
		if budget.CalculatedSpend != nil {
			if budget.CalculatedSpend.ActualSpend != nil && budget.CalculatedSpend.ActualSpend.Amount != nil {
				b.Actual, _ = strconv.ParseFloat(*budget.CalculatedSpend.ActualSpend.Amount, 64)
			}
			if budget.CalculatedSpend.ForecastedSpend != nil && budget.CalculatedSpend.ForecastedSpend.Amount != nil {
				b.Forecast, _ = strconv.ParseFloat(*budget.CalculatedSpend.ForecastedSpend.Amount, 64)
			}
		}
		budgetsData = append(budgetsData, b)
	}

	return budgetsData, nil
}

// countInstances soma as instâncias de todas as reservations de uma página.
func countInstances(reservations []ec2Types.Reservation) int {
	total := 0
	for _, reservation := range reservations {
		total += len(reservation.Instances)
	}
	return total
}

// costsFromResult lê apenas o primeiro bucket mensal do resultado; a janela de
// 30 dias produz exatamente um. Chaves de serviço repetidas sobrescrevem a
// ocorrência anterior.
func costsFromResult(result *costexplorer.GetCostAndUsageOutput) entity.CostBreakdown {
	costs := entity.CostBreakdown{}
	if len(result.ResultsByTime) == 0 {
		return costs
	}

	for _, group := range result.ResultsByTime[0].Groups {
		if len(group.Keys) == 0 {
			continue
		}
		metric, ok := group.Metrics["UnblendedCost"]
		if !ok || metric.Amount == nil {
			continue
		}
		amount, _ := strconv.ParseFloat(*metric.Amount, 64)
		costs[group.Keys[0]] = roundCents(amount)
	}

	return costs
}

// roundCents arredonda half-up para duas casas decimais.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

package aws

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	budgetsTypes "github.com/aws/aws-sdk-go-v2/service/budgets/types"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3Types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/aws-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEC2 struct {
	output *ec2.DescribeInstancesOutput
	err    error
}

func (f *fakeEC2) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	return f.output, f.err
}

type fakeS3 struct {
	output *s3.ListBucketsOutput
	err    error
}

func (f *fakeS3) ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	return f.output, f.err
}

type fakeCostExplorer struct {
	input  *costexplorer.GetCostAndUsageInput
	output *costexplorer.GetCostAndUsageOutput
	err    error
}

func (f *fakeCostExplorer) GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error) {
	f.input = params
	return f.output, f.err
}

type fakeSTS struct {
	account string
	err     error
}

func (f *fakeSTS) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &sts.GetCallerIdentityOutput{Account: aws.String(f.account)}, nil
}

type fakeBudgets struct {
	input  *budgets.DescribeBudgetsInput
	output *budgets.DescribeBudgetsOutput
	err    error
}

func (f *fakeBudgets) DescribeBudgets(ctx context.Context, params *budgets.DescribeBudgetsInput, optFns ...func(*budgets.Options)) (*budgets.DescribeBudgetsOutput, error) {
	f.input = params
	return f.output, f.err
}

func newTestRepository(clients *ClientSet, now time.Time) *AWSRepositoryImpl {
	return &AWSRepositoryImpl{
		newClients: func(ctx context.Context, creds types.Credentials) (*ClientSet, error) {
			return clients, nil
		},
		now: func() time.Time { return now },
	}
}

func testCreds() types.Credentials {
	return types.Credentials{AccessKey: "AKIAEXAMPLE", SecretKey: "secret", Region: "us-east-1"}
}

func instances(n int) []ec2Types.Instance {
	out := make([]ec2Types.Instance, n)
	return out
}

func TestGetResourceSummaryCountsAcrossReservations(t *testing.T) {
	clients := &ClientSet{
		EC2: &fakeEC2{output: &ec2.DescribeInstancesOutput{
			Reservations: []ec2Types.Reservation{
				{Instances: instances(3)},
				{Instances: instances(1)},
				{Instances: instances(0)},
				{Instances: instances(2)},
			},
		}},
		S3: &fakeS3{output: &s3.ListBucketsOutput{
			Buckets: []s3Types.Bucket{
				{Name: aws.String("logs")},
				{Name: aws.String("backups")},
			},
		}},
	}
	repo := newTestRepository(clients, time.Now())

	summary, err := repo.GetResourceSummary(context.Background(), testCreds())
	require.NoError(t, err)
	assert.Equal(t, 6, summary.EC2Instances)
	assert.Equal(t, 2, summary.S3Buckets)
}

func TestGetResourceSummaryPropagatesRawError(t *testing.T) {
	authErr := errors.New("AuthFailure: AWS was not able to validate the provided access credentials")
	clients := &ClientSet{
		EC2: &fakeEC2{err: authErr},
		S3:  &fakeS3{output: &s3.ListBucketsOutput{}},
	}
	repo := newTestRepository(clients, time.Now())

	_, err := repo.GetResourceSummary(context.Background(), testCreds())
	require.Error(t, err)
	assert.Equal(t, authErr.Error(), err.Error())
}

func costGroup(service, amount string) ceTypes.Group {
	return ceTypes.Group{
		Keys: []string{service},
		Metrics: map[string]ceTypes.MetricValue{
			"UnblendedCost": {Amount: aws.String(amount), Unit: aws.String("USD")},
		},
	}
}

func TestGetCostBreakdownRequestShape(t *testing.T) {
	now := time.Date(2026, 8, 25, 15, 0, 0, 0, time.UTC)
	ce := &fakeCostExplorer{output: &costexplorer.GetCostAndUsageOutput{}}
	repo := newTestRepository(&ClientSet{CostExplorer: ce}, now)

	_, err := repo.GetCostBreakdown(context.Background(), testCreds())
	require.NoError(t, err)

	require.NotNil(t, ce.input)
	assert.Equal(t, "2026-07-26", aws.ToString(ce.input.TimePeriod.Start))
	assert.Equal(t, "2026-08-25", aws.ToString(ce.input.TimePeriod.End))
	assert.Equal(t, ceTypes.GranularityMonthly, ce.input.Granularity)
	assert.Equal(t, []string{"UnblendedCost"}, ce.input.Metrics)
	require.Len(t, ce.input.GroupBy, 1)
	assert.Equal(t, ceTypes.GroupDefinitionTypeDimension, ce.input.GroupBy[0].Type)
	assert.Equal(t, "SERVICE", aws.ToString(ce.input.GroupBy[0].Key))
}

func TestGetCostBreakdownRoundsHalfUp(t *testing.T) {
	ce := &fakeCostExplorer{output: &costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []ceTypes.ResultByTime{{
			Groups: []ceTypes.Group{
				costGroup("Amazon Elastic Compute Cloud - Compute", "12.345"),
				costGroup("Amazon Simple Storage Service", "0.001"),
			},
		}},
	}}
	repo := newTestRepository(&ClientSet{CostExplorer: ce}, time.Now())

	costs, err := repo.GetCostBreakdown(context.Background(), testCreds())
	require.NoError(t, err)
	assert.Equal(t, 12.35, costs["Amazon Elastic Compute Cloud - Compute"])
	// Valores que arredondam para zero continuam presentes no mapa.
	assert.Contains(t, costs, "Amazon Simple Storage Service")
	assert.Equal(t, 0.0, costs["Amazon Simple Storage Service"])
}

func TestGetCostBreakdownDuplicateServiceLastWins(t *testing.T) {
	ce := &fakeCostExplorer{output: &costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []ceTypes.ResultByTime{{
			Groups: []ceTypes.Group{
				costGroup("AWS Lambda", "1.10"),
				costGroup("AWS Lambda", "2.20"),
			},
		}},
	}}
	repo := newTestRepository(&ClientSet{CostExplorer: ce}, time.Now())

	costs, err := repo.GetCostBreakdown(context.Background(), testCreds())
	require.NoError(t, err)
	assert.Len(t, costs, 1)
	assert.Equal(t, 2.2, costs["AWS Lambda"])
}

func TestGetCostBreakdownReadsFirstBucketOnly(t *testing.T) {
	ce := &fakeCostExplorer{output: &costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []ceTypes.ResultByTime{
			{Groups: []ceTypes.Group{costGroup("Amazon EC2", "5.00")}},
			{Groups: []ceTypes.Group{costGroup("Amazon EC2", "99.00")}},
		},
	}}
	repo := newTestRepository(&ClientSet{CostExplorer: ce}, time.Now())

	costs, err := repo.GetCostBreakdown(context.Background(), testCreds())
	require.NoError(t, err)
	assert.Equal(t, 5.0, costs["Amazon EC2"])
}

func TestGetCostTrendFormatsMonths(t *testing.T) {
	ce := &fakeCostExplorer{output: &costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []ceTypes.ResultByTime{
			{
				TimePeriod: &ceTypes.DateInterval{Start: aws.String("2026-06-01"), End: aws.String("2026-07-01")},
				Total: map[string]ceTypes.MetricValue{
					"UnblendedCost": {Amount: aws.String("140.50")},
				},
			},
			{
				TimePeriod: &ceTypes.DateInterval{Start: aws.String("2026-07-01"), End: aws.String("2026-08-01")},
				Total: map[string]ceTypes.MetricValue{
					"UnblendedCost": {Amount: aws.String("151.75")},
				},
			},
		},
	}}
	repo := newTestRepository(&ClientSet{CostExplorer: ce, STS: &fakeSTS{account: "123456789012"}}, time.Now())

	trend, err := repo.GetCostTrend(context.Background(), testCreds())
	require.NoError(t, err)
	assert.Equal(t, "123456789012", trend.AccountID)
	require.Len(t, trend.MonthlyCosts, 2)
	assert.Equal(t, "Jun 2026", trend.MonthlyCosts[0].Month)
	assert.Equal(t, 140.50, trend.MonthlyCosts[0].Cost)
	assert.Equal(t, "Jul 2026", trend.MonthlyCosts[1].Month)
}

func TestGetCostTrendToleratesIdentityFailure(t *testing.T) {
	ce := &fakeCostExplorer{output: &costexplorer.GetCostAndUsageOutput{}}
	repo := newTestRepository(&ClientSet{CostExplorer: ce, STS: &fakeSTS{err: errors.New("denied")}}, time.Now())

	trend, err := repo.GetCostTrend(context.Background(), testCreds())
	require.NoError(t, err)
	assert.Empty(t, trend.AccountID)
}

func TestGetBudgetsHandlesNilSpendBlocks(t *testing.T) {
	budgetsClient := &fakeBudgets{output: &budgets.DescribeBudgetsOutput{
		Budgets: []budgetsTypes.Budget{
			{
				BudgetName:  aws.String("monthly-cap"),
				BudgetLimit: &budgetsTypes.Spend{Amount: aws.String("500"), Unit: aws.String("USD")},
				CalculatedSpend: &budgetsTypes.CalculatedSpend{
					ActualSpend:     &budgetsTypes.Spend{Amount: aws.String("321.09"), Unit: aws.String("USD")},
					ForecastedSpend: &budgetsTypes.Spend{Amount: aws.String("480.00"), Unit: aws.String("USD")},
				},
			},
			{
				BudgetName: aws.String("bare-budget"),
			},
		},
	}}
	stsClient := &fakeSTS{account: "123456789012"}
	repo := newTestRepository(&ClientSet{STS: stsClient, Budgets: budgetsClient}, time.Now())

	result, err := repo.GetBudgets(context.Background(), testCreds())
	require.NoError(t, err)

	require.NotNil(t, budgetsClient.input)
	assert.Equal(t, "123456789012", aws.ToString(budgetsClient.input.AccountId))

	require.Len(t, result, 2)
	assert.Equal(t, "monthly-cap", result[0].Name)
	assert.Equal(t, 500.0, result[0].Limit)
	assert.Equal(t, 321.09, result[0].Actual)
	assert.Equal(t, 480.0, result[0].Forecast)
	assert.Equal(t, "bare-budget", result[1].Name)
	assert.Zero(t, result[1].Limit)
	assert.Zero(t, result[1].Actual)
	assert.Zero(t, result[1].Forecast)
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 12.35, roundCents(12.345))
	assert.Equal(t, 0.0, roundCents(0.001))
	assert.Equal(t, 0.01, roundCents(0.005))
	assert.Equal(t, 10.0, roundCents(10))
	assert.Equal(t, -3.33, roundCents(-3.3349))
}

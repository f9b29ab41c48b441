package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/aws-dashboard-go/internal/shared/types"
)

// EC2API is the subset of the EC2 client used by the dashboard.
type EC2API interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// S3API is the subset of the S3 client used by the dashboard.
type S3API interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
}

// CostExplorerAPI is the subset of the Cost Explorer client used by the dashboard.
type CostExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

// STSAPI is the subset of the STS client used by the dashboard.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// BudgetsAPI is the subset of the Budgets client used by the dashboard.
type BudgetsAPI interface {
	DescribeBudgets(ctx context.Context, params *budgets.DescribeBudgetsInput, optFns ...func(*budgets.Options)) (*budgets.DescribeBudgetsOutput, error)
}

// ClientSet bundles the service clients for one request-scoped session. It is
// owned by the handler invocation that created it and discarded afterwards.
type ClientSet struct {
	EC2          EC2API
	S3           S3API
	CostExplorer CostExplorerAPI
	STS          STSAPI
	Budgets      BudgetsAPI
}

// newClientSet builds service clients from explicit per-request credentials.
// Nenhum cache: cada request monta a própria config e os próprios clientes.
func newClientSet(ctx context.Context, creds types.Credentials) (*ClientSet, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(creds.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(creds.AccessKey, creds.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Cost Explorer e Budgets são APIs globais servidas em us-east-1.
	globalCfg := cfg.Copy()
	globalCfg.Region = "us-east-1"

	return &ClientSet{
		EC2:          ec2.NewFromConfig(cfg),
		S3:           s3.NewFromConfig(cfg),
		CostExplorer: costexplorer.NewFromConfig(globalCfg),
		STS:          sts.NewFromConfig(cfg),
		Budgets:      budgets.NewFromConfig(globalCfg),
	}, nil
}

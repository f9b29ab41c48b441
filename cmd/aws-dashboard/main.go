package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-dashboard-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/aws-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/aws-dashboard-go/internal/application/usecase"
	"github.com/diillson/aws-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewServerApp(version.Version)

	// Inicializa os repositórios
	awsRepo := aws.NewAWSRepository()
	configRepo := config.NewConfigRepository()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(awsRepo)

	app.SetDashboardUseCase(dashboardUseCase)
	app.SetConfigRepository(configRepo)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

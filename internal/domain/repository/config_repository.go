package repository

import "github.com/diillson/aws-dashboard-go/internal/shared/types"

// ConfigRepository defines the interface for loading server configuration.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
}

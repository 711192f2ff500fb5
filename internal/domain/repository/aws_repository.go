package repository

import (
	"context"

	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
)

// AWSRepository defines the interface for AWS API interactions.
type AWSRepository interface {
	// Profile Operations
	GetAWSProfiles() []string
	GetCallerIdentity(ctx context.Context, profile string) (entity.CallerIdentity, error)
}

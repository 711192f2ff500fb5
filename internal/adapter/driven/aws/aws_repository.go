package aws

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
	"github.com/diillson/aws-sso-launcher-go/internal/domain/repository"
)

// AWSRepositoryImpl implementa o AWSRepository com cache de configurações.
type AWSRepositoryImpl struct {
	cfgCache map[string]aws.Config
	mu       sync.Mutex
}

// NewAWSRepository cria uma nova implementação do AWSRepository.
func NewAWSRepository() repository.AWSRepository {
	return &AWSRepositoryImpl{
		cfgCache: make(map[string]aws.Config),
	}
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[profile]; ok {
		return cfg, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(profile))
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	r.cfgCache[profile] = cfg
	return cfg, nil
}

// GetAWSProfiles lista os perfis configurados em ~/.aws/credentials e
// ~/.aws/config.
func (r *AWSRepositoryImpl) GetAWSProfiles() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return []string{"default"}
	}

	credentialsPath := filepath.Join(homeDir, ".aws", "credentials")
	configPath := filepath.Join(homeDir, ".aws", "config")

	profiles := make(map[string]bool)
	profileRegex := regexp.MustCompile(`\[([^]]+)\]`)

	parseFile := func(path string, isConfig bool) {
		content, err := os.ReadFile(path)
		if err != nil {
			return
		}
		matches := profileRegex.FindAllStringSubmatch(string(content), -1)
		for _, match := range matches {
			profileName := match[1]
			if isConfig {
				profileName = strings.TrimPrefix(profileName, "profile ")
			}
			profiles[profileName] = true
		}
	}

	parseFile(credentialsPath, false)
	parseFile(configPath, true)

	if len(profiles) == 0 {
		profiles["default"] = true
	}

	result := make([]string, 0, len(profiles))
	for profile := range profiles {
		result = append(result, profile)
	}
	sort.Strings(result)
	return result
}

// GetCallerIdentity resolve a identidade ativa do perfil via STS.
func (r *AWSRepositoryImpl) GetCallerIdentity(ctx context.Context, profile string) (entity.CallerIdentity, error) {
	cfg, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return entity.CallerIdentity{}, err
	}

	client := sts.NewFromConfig(cfg)
	result, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return entity.CallerIdentity{}, fmt.Errorf("error getting caller identity for profile %s: %w", profile, err)
	}

	identity := entity.CallerIdentity{}
	if result.Account != nil {
		identity.AccountID = *result.Account
	}
	if result.Arn != nil {
		identity.ARN = *result.Arn
	}
	if result.UserId != nil {
		identity.UserID = *result.UserId
	}
	return identity, nil
}

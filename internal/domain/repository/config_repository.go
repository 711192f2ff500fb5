package repository

import (
	"github.com/diillson/aws-sso-launcher-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading the settings file and
// the raw configuration texts the engine consumes.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	ReadConfigText(filePath string) (string, error)
}

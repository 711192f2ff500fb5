package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeFile(t, "settings.toml", `
organizations_file = "orgs.conf"
accounts_file = "accounts.conf"
fallback_role = "ReadOnly"
fallback_region = "us-east-1"
report_type = ["csv", "json"]
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "orgs.conf", cfg.OrganizationsFile)
	assert.Equal(t, "accounts.conf", cfg.AccountsFile)
	assert.Equal(t, "ReadOnly", cfg.FallbackRole)
	assert.Equal(t, []string{"csv", "json"}, cfg.ReportType)
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeFile(t, "settings.yaml", `
accounts_file: accounts.conf
fallback_region: sa-east-1
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "accounts.conf", cfg.AccountsFile)
	assert.Equal(t, "sa-east-1", cfg.FallbackRegion)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeFile(t, "settings.json", `{"combined_file": "legacy.conf", "report_name": "directory"}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "legacy.conf", cfg.CombinedFile)
	assert.Equal(t, "directory", cfg.ReportName)
}

func TestLoadConfigFileUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "settings.ini", "[x]")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file format")
}

func TestLoadConfigFileMissingAndDirectory(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.Error(t, err)
}

func TestReadConfigText(t *testing.T) {
	path := writeFile(t, "orgs.conf", "[Corpay]\nregion = us-east-1\n")

	repo := NewConfigRepository()
	text, err := repo.ReadConfigText(path)
	require.NoError(t, err)
	assert.Equal(t, "[Corpay]\nregion = us-east-1\n", text)
}

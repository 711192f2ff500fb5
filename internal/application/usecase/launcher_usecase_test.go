package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
	"github.com/diillson/aws-sso-launcher-go/internal/shared/types"
)

// --- fakes ---

type fakeConfigRepo struct {
	settings *types.Config
	files    map[string]string
}

func (r *fakeConfigRepo) LoadConfigFile(filePath string) (*types.Config, error) {
	if r.settings == nil {
		return nil, fmt.Errorf("no settings file: %s", filePath)
	}
	return r.settings, nil
}

func (r *fakeConfigRepo) ReadConfigText(filePath string) (string, error) {
	text, ok := r.files[filePath]
	if !ok {
		return "", fmt.Errorf("error accessing config file: %s", filePath)
	}
	return text, nil
}

type fakeExportRepo struct {
	exported []string
}

func (r *fakeExportRepo) ExportToCSV(dir *entity.Directory, filename, outputDir string) (string, error) {
	r.exported = append(r.exported, "csv")
	return "/tmp/" + filename + ".csv", nil
}

func (r *fakeExportRepo) ExportToJSON(dir *entity.Directory, validation entity.ValidationResult, filename, outputDir string) (string, error) {
	r.exported = append(r.exported, "json")
	return "/tmp/" + filename + ".json", nil
}

func (r *fakeExportRepo) ExportToPDF(dir *entity.Directory, validation entity.ValidationResult, filename, outputDir string) (string, error) {
	r.exported = append(r.exported, "pdf")
	return "/tmp/" + filename + ".pdf", nil
}

type fakeAWSRepo struct {
	identity entity.CallerIdentity
	err      error
}

func (r *fakeAWSRepo) GetAWSProfiles() []string { return []string{"default"} }

func (r *fakeAWSRepo) GetCallerIdentity(ctx context.Context, profile string) (entity.CallerIdentity, error) {
	return r.identity, r.err
}

type recordingConsole struct {
	lines []string
}

func (c *recordingConsole) record(a ...interface{}) {
	c.lines = append(c.lines, strings.TrimSpace(fmt.Sprintln(a...)))
}

func (c *recordingConsole) Print(a ...interface{})   { c.record(a...) }
func (c *recordingConsole) Println(a ...interface{}) { c.record(a...) }
func (c *recordingConsole) Printf(format string, a ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, a...))
}
func (c *recordingConsole) LogInfo(format string, a ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, a...))
}
func (c *recordingConsole) LogWarning(format string, a ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, a...))
}
func (c *recordingConsole) LogError(format string, a ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, a...))
}
func (c *recordingConsole) LogSuccess(format string, a ...interface{}) {
	c.lines = append(c.lines, fmt.Sprintf(format, a...))
}
func (c *recordingConsole) Status(message string) types.StatusHandle         { return noopHandle{} }
func (c *recordingConsole) ProgressWithTotal(total int) types.ProgressHandle { return noopHandle{} }
func (c *recordingConsole) CreateTable() types.TableInterface                { return &fakeTable{} }

func (c *recordingConsole) output() string { return strings.Join(c.lines, "\n") }

type noopHandle struct{}

func (noopHandle) Update(string) {}
func (noopHandle) Increment()    {}
func (noopHandle) Stop()         {}

type fakeTable struct {
	rows [][]string
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, row)
}
func (t *fakeTable) Render() string {
	var b strings.Builder
	for _, row := range t.rows {
		b.WriteString(strings.Join(row, " | "))
		b.WriteString("\n")
	}
	return b.String()
}

// --- fixtures ---

const orgsText = `[Corpay]
region = us-east-1
roleName = FC-Admin
baseURL = https://d-1.awsapps.com
altRoles = Developer, PowerUser`

const accountsText = `[Acct1]
aws_account_id = 415867864530
defaults = Corpay
group = Team1`

func newTestUseCase(files map[string]string, settings *types.Config) (*LauncherUseCase, *fakeExportRepo, *recordingConsole) {
	exportRepo := &fakeExportRepo{}
	console := &recordingConsole{}
	uc := NewLauncherUseCase(
		&fakeAWSRepo{},
		exportRepo,
		&fakeConfigRepo{files: files, settings: settings},
		console,
	)
	return uc, exportRepo, console
}

// --- tests ---

func TestResolveConfigurationTwoFieldPath(t *testing.T) {
	uc, _, _ := newTestUseCase(map[string]string{
		"orgs.conf":     orgsText,
		"accounts.conf": accountsText,
	}, nil)

	resolution, err := uc.ResolveConfiguration(&types.CLIArgs{
		OrganizationsFile: "orgs.conf",
		AccountsFile:      "accounts.conf",
	})
	require.NoError(t, err)

	assert.True(t, resolution.Validation.Valid)
	account := resolution.Directory.Accounts["Acct1"]
	require.NotNil(t, account)
	assert.Equal(t, "Corpay", account.Organization)
	assert.Equal(t, "FC-Admin", account.EffectiveRoleName)
}

func TestResolveConfigurationCombinedPath(t *testing.T) {
	combined := `[Corpay]
organization = true
region = us-east-1
roleName = FC-Admin

[Acct1]
aws_account_id = 415867864530
defaults = Corpay`

	uc, _, _ := newTestUseCase(map[string]string{"legacy.conf": combined}, nil)

	resolution, err := uc.ResolveConfiguration(&types.CLIArgs{CombinedFile: "legacy.conf"})
	require.NoError(t, err)
	assert.Equal(t, "Corpay", resolution.Directory.Accounts["Acct1"].Organization)
}

func TestResolveConfigurationNoSource(t *testing.T) {
	uc, _, _ := newTestUseCase(nil, nil)

	_, err := uc.ResolveConfiguration(&types.CLIArgs{})
	assert.True(t, errors.Is(err, types.ErrNoConfigurationSource))
}

func TestResolveConfigurationMalformedAccountIDIsFatal(t *testing.T) {
	uc, _, _ := newTestUseCase(map[string]string{
		"accounts.conf": "[Bad]\naws_account_id = 123",
	}, nil)

	resolution, err := uc.ResolveConfiguration(&types.CLIArgs{AccountsFile: "accounts.conf"})
	require.Error(t, err)
	assert.Nil(t, resolution)
	assert.Contains(t, err.Error(), "invalid AWS account ID on line 2")
}

func TestResolveConfigurationSettingsFileMerge(t *testing.T) {
	settings := &types.Config{
		OrganizationsFile: "orgs.conf",
		AccountsFile:      "accounts.conf",
		FallbackRegion:    "sa-east-1",
	}
	uc, _, _ := newTestUseCase(map[string]string{
		"orgs.conf":      orgsText,
		"accounts.conf":  accountsText,
		"other-accounts": "[Other]\naws_account_id = 111111111111",
	}, settings)

	// A flag explícita vence o valor do arquivo de configurações.
	args := &types.CLIArgs{ConfigFile: "settings.toml", AccountsFile: "other-accounts"}
	resolution, err := uc.ResolveConfiguration(args)
	require.NoError(t, err)

	assert.Contains(t, resolution.Directory.Accounts, "Other")
	assert.NotContains(t, resolution.Directory.Accounts, "Acct1")
	assert.Equal(t, "sa-east-1", resolution.Directory.Accounts["Other"].EffectiveRegion)
}

func TestRunValidateInvalidConfiguration(t *testing.T) {
	uc, _, console := newTestUseCase(map[string]string{
		"accounts.conf": "[Orphan]\naws_account_id = 123456789012\ndefaults = NoSuchOrg",
	}, nil)

	err := uc.RunValidate(&types.CLIArgs{AccountsFile: "accounts.conf"})
	assert.True(t, errors.Is(err, types.ErrInvalidConfiguration))
	assert.Contains(t, console.output(), "references undefined organization 'NoSuchOrg'")
}

func TestRunValidateValidConfiguration(t *testing.T) {
	uc, _, console := newTestUseCase(map[string]string{
		"orgs.conf":     orgsText,
		"accounts.conf": accountsText,
	}, nil)

	err := uc.RunValidate(&types.CLIArgs{OrganizationsFile: "orgs.conf", AccountsFile: "accounts.conf"})
	require.NoError(t, err)
	assert.Contains(t, console.output(), "Configuration is valid")
}

func TestRunLaunchPrintsURL(t *testing.T) {
	uc, _, console := newTestUseCase(map[string]string{
		"orgs.conf":     orgsText,
		"accounts.conf": accountsText,
	}, nil)

	args := &types.CLIArgs{OrganizationsFile: "orgs.conf", AccountsFile: "accounts.conf"}
	err := uc.RunLaunch(args, "Acct1", "", "")
	require.NoError(t, err)

	output := console.output()
	assert.Contains(t, output, "https://d-1.awsapps.com/start/#/console?account_id=415867864530&role_name=FC-Admin")
	assert.Contains(t, output, "Alternate roles: Developer, PowerUser")
}

func TestRunLaunchRoleFlagWins(t *testing.T) {
	uc, _, console := newTestUseCase(map[string]string{
		"orgs.conf":     orgsText,
		"accounts.conf": accountsText,
	}, nil)

	args := &types.CLIArgs{OrganizationsFile: "orgs.conf", AccountsFile: "accounts.conf"}
	err := uc.RunLaunch(args, "Acct1", "PowerUser", "")
	require.NoError(t, err)
	assert.Contains(t, console.output(), "role_name=PowerUser")
}

func TestRunLaunchUnknownAlias(t *testing.T) {
	uc, _, _ := newTestUseCase(map[string]string{
		"orgs.conf":     orgsText,
		"accounts.conf": accountsText,
	}, nil)

	args := &types.CLIArgs{OrganizationsFile: "orgs.conf", AccountsFile: "accounts.conf"}
	err := uc.RunLaunch(args, "Nope", "", "")
	assert.True(t, errors.Is(err, types.ErrAccountNotFound))
}

func TestRunLaunchWithoutSSOBaseURL(t *testing.T) {
	uc, _, _ := newTestUseCase(map[string]string{
		"accounts.conf": accountsText,
	}, nil)

	// Without the organizations text the reference dangles and there is no
	// SSO base URL to launch with.
	args := &types.CLIArgs{AccountsFile: "accounts.conf"}
	err := uc.RunLaunch(args, "Acct1", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no SSO base URL")
}

func TestRunExportWritesRequestedFormats(t *testing.T) {
	uc, exportRepo, _ := newTestUseCase(map[string]string{
		"orgs.conf":     orgsText,
		"accounts.conf": accountsText,
	}, nil)

	args := &types.CLIArgs{
		OrganizationsFile: "orgs.conf",
		AccountsFile:      "accounts.conf",
		ReportType:        []string{"csv", "JSON", "pdf"},
	}
	require.NoError(t, uc.RunExport(args))
	assert.Equal(t, []string{"csv", "json", "pdf"}, exportRepo.exported)
}

func TestRunExportUnsupportedType(t *testing.T) {
	uc, _, _ := newTestUseCase(map[string]string{
		"orgs.conf":     orgsText,
		"accounts.conf": accountsText,
	}, nil)

	args := &types.CLIArgs{
		OrganizationsFile: "orgs.conf",
		AccountsFile:      "accounts.conf",
		ReportType:        []string{"xml"},
	}
	err := uc.RunExport(args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report type")
}

func TestRunWhoAmIMatchesConfiguredAccount(t *testing.T) {
	exportRepo := &fakeExportRepo{}
	console := &recordingConsole{}
	uc := NewLauncherUseCase(
		&fakeAWSRepo{identity: entity.CallerIdentity{
			AccountID: "415867864530",
			ARN:       "arn:aws:sts::415867864530:assumed-role/FC-Admin/user",
		}},
		exportRepo,
		&fakeConfigRepo{files: map[string]string{
			"orgs.conf":     orgsText,
			"accounts.conf": accountsText,
		}},
		console,
	)

	args := &types.CLIArgs{OrganizationsFile: "orgs.conf", AccountsFile: "accounts.conf"}
	require.NoError(t, uc.RunWhoAmI(context.Background(), args))
	assert.Contains(t, console.output(), "Matches configured account 'Acct1'")
}

func TestRunWhoAmIIdentityErrorListsProfiles(t *testing.T) {
	console := &recordingConsole{}
	uc := NewLauncherUseCase(
		&fakeAWSRepo{err: errors.New("expired credentials")},
		&fakeExportRepo{},
		&fakeConfigRepo{files: map[string]string{
			"orgs.conf":     orgsText,
			"accounts.conf": accountsText,
		}},
		console,
	)

	args := &types.CLIArgs{OrganizationsFile: "orgs.conf", AccountsFile: "accounts.conf"}
	err := uc.RunWhoAmI(context.Background(), args)
	require.Error(t, err)
	assert.Contains(t, console.output(), "Available profiles: default")
}

func TestRunWhoAmIUnknownAccount(t *testing.T) {
	exportRepo := &fakeExportRepo{}
	console := &recordingConsole{}
	uc := NewLauncherUseCase(
		&fakeAWSRepo{identity: entity.CallerIdentity{AccountID: "999999999999"}},
		exportRepo,
		&fakeConfigRepo{files: map[string]string{
			"orgs.conf":     orgsText,
			"accounts.conf": accountsText,
		}},
		console,
	)

	args := &types.CLIArgs{OrganizationsFile: "orgs.conf", AccountsFile: "accounts.conf"}
	require.NoError(t, uc.RunWhoAmI(context.Background(), args))
	assert.Contains(t, console.output(), "not present in the configured directory")
}

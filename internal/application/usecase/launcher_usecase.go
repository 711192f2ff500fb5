package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
	"github.com/diillson/aws-sso-launcher-go/internal/domain/parser"
	"github.com/diillson/aws-sso-launcher-go/internal/domain/repository"
	"github.com/diillson/aws-sso-launcher-go/internal/domain/sso"
	"github.com/diillson/aws-sso-launcher-go/internal/shared/types"
)

// LauncherUseCase handles the launcher workflows on top of the
// configuration-resolution engine.
type LauncherUseCase struct {
	awsRepo    repository.AWSRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewLauncherUseCase creates a new launcher use case.
func NewLauncherUseCase(
	awsRepo repository.AWSRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *LauncherUseCase {
	return &LauncherUseCase{
		awsRepo:    awsRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// Resolution é o resultado de uma passada completa do motor: o diretório
// resolvido e o resultado combinado da validação.
type Resolution struct {
	Directory  *entity.Directory
	Validation entity.ValidationResult
}

// mergeConfigFile aplica valores do arquivo de configurações onde a linha de
// comando não especificou nada. Flags sempre vencem.
func (uc *LauncherUseCase) mergeConfigFile(args *types.CLIArgs) error {
	if args.ConfigFile == "" {
		return nil
	}

	config, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	if args.OrganizationsFile == "" {
		args.OrganizationsFile = config.OrganizationsFile
	}
	if args.AccountsFile == "" {
		args.AccountsFile = config.AccountsFile
	}
	if args.CombinedFile == "" {
		args.CombinedFile = config.CombinedFile
	}
	if args.FallbackRole == "" {
		args.FallbackRole = config.FallbackRole
	}
	if args.FallbackRegion == "" {
		args.FallbackRegion = config.FallbackRegion
	}
	if args.ReportName == "" {
		args.ReportName = config.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = config.ReportType
	}
	if args.Dir == "" {
		args.Dir = config.Dir
	}

	return nil
}

// ResolveConfiguration runs the whole pipeline: read the configured texts,
// parse and classify, resolve references and build groups, then validate.
// A malformed account ID surfaces as a *parser.ParseError and aborts the
// call; validation findings are returned as data, never as an error.
func (uc *LauncherUseCase) ResolveConfiguration(args *types.CLIArgs) (*Resolution, error) {
	if err := uc.mergeConfigFile(args); err != nil {
		return nil, err
	}

	fallback := parser.Fallback{RoleName: args.FallbackRole, Region: args.FallbackRegion}

	if args.CombinedFile != "" {
		text, err := uc.configRepo.ReadConfigText(args.CombinedFile)
		if err != nil {
			return nil, err
		}
		combined, err := parser.ParseCombinedConfig(text)
		if err != nil {
			return nil, err
		}
		return &Resolution{
			Directory:  parser.Resolve(combined.Organizations, combined.Defaults, combined.Accounts, fallback),
			Validation: parser.ValidateCombined(combined.Organizations, combined.Accounts, combined.Defaults),
		}, nil
	}

	if args.AccountsFile == "" && args.OrganizationsFile == "" {
		return nil, types.ErrNoConfigurationSource
	}

	orgs := entity.NewOrganizationSet()
	if args.OrganizationsFile != "" {
		text, err := uc.configRepo.ReadConfigText(args.OrganizationsFile)
		if err != nil {
			return nil, err
		}
		orgs = parser.ParseOrganizationsConfig(text)
	}

	accounts := entity.NewAccountSet()
	if args.AccountsFile != "" {
		text, err := uc.configRepo.ReadConfigText(args.AccountsFile)
		if err != nil {
			return nil, err
		}
		accounts, err = parser.ParseAccountsConfig(text)
		if err != nil {
			return nil, err
		}
	}

	return &Resolution{
		Directory:  parser.Resolve(orgs, nil, accounts, fallback),
		Validation: parser.ValidateCombined(orgs, accounts, nil),
	}, nil
}

// RunValidate resolve a configuração e apresenta erros e avisos lado a lado.
func (uc *LauncherUseCase) RunValidate(args *types.CLIArgs) error {
	resolution, err := uc.ResolveConfiguration(args)
	if err != nil {
		return err
	}

	validation := resolution.Validation
	for _, e := range validation.Errors {
		uc.console.LogError("%s", e)
	}
	for _, w := range validation.Warnings {
		uc.console.LogWarning("%s", w)
	}

	if !validation.Valid {
		uc.console.LogError("Configuration is invalid: %d error(s), %d warning(s)",
			len(validation.Errors), len(validation.Warnings))
		return types.ErrInvalidConfiguration
	}

	uc.console.LogSuccess("Configuration is valid: %d organization(s), %d account(s), %d warning(s)",
		len(resolution.Directory.Organizations), len(resolution.Directory.Accounts), len(validation.Warnings))
	return nil
}

// RunList renders the resolved directory as a table, groups in first-seen
// order and accounts in declaration order within each group.
func (uc *LauncherUseCase) RunList(args *types.CLIArgs) error {
	resolution, err := uc.ResolveConfiguration(args)
	if err != nil {
		return err
	}

	uc.warnOnValidation(resolution.Validation)

	table := uc.console.CreateTable()
	for _, column := range []string{"Group", "Alias", "Account ID", "Organization", "Role", "Region"} {
		table.AddColumn(column)
	}

	for _, group := range resolution.Directory.GroupsInOrder() {
		for _, account := range group.Accounts {
			table.AddRow(group.Name, account.Alias, account.AccountID,
				account.Organization, account.EffectiveRoleName, account.EffectiveRegion)
		}
	}

	uc.console.Println(table.Render())
	return nil
}

// RunLaunch imprime a URL de lançamento SSO para a conta selecionada,
// usando o papel efetivo (ou o papel pedido via --role) e o destino padrão
// do console para a região efetiva.
func (uc *LauncherUseCase) RunLaunch(args *types.CLIArgs, alias, role, destination string) error {
	resolution, err := uc.ResolveConfiguration(args)
	if err != nil {
		return err
	}

	uc.warnOnValidation(resolution.Validation)

	account := resolution.Directory.Accounts[alias]
	if account == nil {
		return fmt.Errorf("%w: '%s'", types.ErrAccountNotFound, alias)
	}

	org := resolution.Directory.OrganizationFor(account)
	if org == nil || org.SSOBaseURL == "" {
		return fmt.Errorf("account '%s' resolves to organization '%s' which has no SSO base URL",
			alias, account.Organization)
	}

	roleName := role
	if roleName == "" {
		roleName = account.EffectiveRoleName
	}
	if roleName == "" {
		return fmt.Errorf("account '%s' has no role to assume. Set roleName or --role", alias)
	}

	if destination == "" {
		destination = sso.DefaultDestination(account.EffectiveRegion)
	}

	launchURL, err := sso.BuildLaunchURL(sso.LaunchRequest{
		SSOBaseURL:     org.SSOBaseURL,
		AccountID:      account.AccountID,
		RoleName:       roleName,
		DestinationURL: destination,
	})
	if err != nil {
		return err
	}

	uc.console.LogInfo("Account %s (%s) as %s", account.Alias, account.AccountID, roleName)
	if len(org.AltRoles) > 0 {
		uc.console.LogInfo("Alternate roles: %s", strings.Join(org.AltRoles, ", "))
	}
	uc.console.Println(launchURL)
	return nil
}

// RunExample imprime os textos de exemplo gerados pelo motor, para servir
// de ponto de partida a uma configuração nova.
func (uc *LauncherUseCase) RunExample(legacy bool) {
	if legacy {
		uc.console.Println(parser.GenerateExample())
		return
	}

	uc.console.LogInfo("Organizations configuration example:")
	uc.console.Println(parser.GenerateOrganizationsExample())
	uc.console.Println()
	uc.console.LogInfo("Accounts configuration example:")
	uc.console.Println(parser.GenerateAccountsExample())
}

// RunExport grava o diretório resolvido nos formatos pedidos.
func (uc *LauncherUseCase) RunExport(args *types.CLIArgs) error {
	resolution, err := uc.ResolveConfiguration(args)
	if err != nil {
		return err
	}

	uc.warnOnValidation(resolution.Validation)

	reportName := args.ReportName
	if reportName == "" {
		reportName = "sso_directory"
	}

	progress := uc.console.ProgressWithTotal(len(args.ReportType))
	defer progress.Stop()

	for _, reportType := range args.ReportType {
		var path string
		switch strings.ToLower(reportType) {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(resolution.Directory, reportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(resolution.Directory, resolution.Validation, reportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(resolution.Directory, resolution.Validation, reportName, args.Dir)
		default:
			err = fmt.Errorf("unsupported report type: %s", reportType)
		}
		if err != nil {
			return err
		}
		progress.Increment()
		uc.console.LogSuccess("Report saved to %s", path)
	}

	return nil
}

// RunWhoAmI descobre a identidade ativa via STS e procura a conta
// correspondente no diretório configurado.
func (uc *LauncherUseCase) RunWhoAmI(ctx context.Context, args *types.CLIArgs) error {
	resolution, err := uc.ResolveConfiguration(args)
	if err != nil {
		return err
	}

	profile := args.Profile
	if profile == "" {
		profile = "default"
	}

	status := uc.console.Status(fmt.Sprintf("Resolving caller identity for profile '%s'...", profile))
	identity, err := uc.awsRepo.GetCallerIdentity(ctx, profile)
	status.Stop()
	if err != nil {
		if profiles := uc.awsRepo.GetAWSProfiles(); len(profiles) > 0 {
			uc.console.LogInfo("Available profiles: %s", strings.Join(profiles, ", "))
		}
		return err
	}

	uc.console.LogInfo("Caller: %s", identity.ARN)
	uc.console.LogInfo("Account ID: %s", identity.AccountID)

	matches := resolution.Directory.FindByAccountID(identity.AccountID)
	if len(matches) == 0 {
		uc.console.LogWarning("Account %s is not present in the configured directory", identity.AccountID)
		return nil
	}

	for _, account := range matches {
		groupName := account.Group
		if groupName == "" {
			groupName = parser.DefaultGroup
		}
		uc.console.LogSuccess("Matches configured account '%s' (group %s, organization %s)",
			account.Alias, groupName, account.Organization)
	}
	return nil
}

func (uc *LauncherUseCase) warnOnValidation(validation entity.ValidationResult) {
	for _, e := range validation.Errors {
		uc.console.LogError("%s", e)
	}
}

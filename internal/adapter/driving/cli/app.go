package cli

import (
	"context"

	"github.com/diillson/aws-sso-launcher-go/pkg/version"

	"github.com/diillson/aws-sso-launcher-go/internal/application/usecase"
	"github.com/diillson/aws-sso-launcher-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd         *cobra.Command
	launcherUseCase *usecase.LauncherUseCase
	version         string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "aws-sso-launcher",
		Short:   "AWS SSO Launcher CLI",
		Long:    "Resolves a section-based account/organization configuration into a launchable directory and builds AWS SSO console launch URLs.",
		Version: formattedVersion,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "AWS SSO Launcher version: %s\n" .Version}}`)

	// Flags compartilhadas entre os subcomandos
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON settings file")
	rootCmd.PersistentFlags().StringP("orgs-file", "o", "", "Path to the organizations configuration text")
	rootCmd.PersistentFlags().StringP("accounts-file", "a", "", "Path to the accounts configuration text")
	rootCmd.PersistentFlags().StringP("combined-file", "l", "", "Path to a legacy combined configuration text")
	rootCmd.PersistentFlags().String("fallback-role", "", "Role name used when neither the account nor its organization declares one")
	rootCmd.PersistentFlags().String("fallback-region", "", "Region used when neither the account nor its organization declares one")

	app.rootCmd = rootCmd

	rootCmd.AddCommand(
		app.newValidateCommand(),
		app.newListCommand(),
		app.newLaunchCommand(),
		app.newExampleCommand(),
		app.newExportCommand(),
		app.newWhoAmICommand(),
	)

	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetLauncherUseCase sets the launcher use case for the CLI app.
func (app *CLIApp) SetLauncherUseCase(useCase *usecase.LauncherUseCase) {
	app.launcherUseCase = useCase
}

// parseArgs parses the shared persistent flags into a CLIArgs struct.
func (app *CLIApp) parseArgs() *types.CLIArgs {
	flags := app.rootCmd.PersistentFlags()
	configFile, _ := flags.GetString("config-file")
	orgsFile, _ := flags.GetString("orgs-file")
	accountsFile, _ := flags.GetString("accounts-file")
	combinedFile, _ := flags.GetString("combined-file")
	fallbackRole, _ := flags.GetString("fallback-role")
	fallbackRegion, _ := flags.GetString("fallback-region")

	return &types.CLIArgs{
		ConfigFile:        configFile,
		OrganizationsFile: orgsFile,
		AccountsFile:      accountsFile,
		CombinedFile:      combinedFile,
		FallbackRole:      fallbackRole,
		FallbackRegion:    fallbackRegion,
	}
}

func (app *CLIApp) newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Parse the configuration texts and report errors and warnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.preamble()
			return app.launcherUseCase.RunValidate(app.parseArgs())
		},
	}
}

func (app *CLIApp) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the resolved groups and accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.preamble()
			return app.launcherUseCase.RunList(app.parseArgs())
		},
	}
}

func (app *CLIApp) newLaunchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launch <alias>",
		Short: "Print the SSO console launch URL for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, _ := cmd.Flags().GetString("role")
			destination, _ := cmd.Flags().GetString("destination")
			return app.launcherUseCase.RunLaunch(app.parseArgs(), args[0], role, destination)
		},
	}
	cmd.Flags().StringP("role", "r", "", "Role to assume instead of the account's effective role")
	cmd.Flags().StringP("destination", "d", "", "Console destination URL (default: console home for the effective region)")
	return cmd
}

func (app *CLIApp) newExampleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print starter configuration texts",
		RunE: func(cmd *cobra.Command, args []string) error {
			legacy, _ := cmd.Flags().GetBool("legacy")
			app.launcherUseCase.RunExample(legacy)
			return nil
		},
	}
	cmd.Flags().Bool("legacy", false, "Print the legacy combined-format example instead")
	return cmd
}

func (app *CLIApp) newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the resolved directory as csv, json, or pdf reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.preamble()
			cliArgs := app.parseArgs()
			cliArgs.ReportName, _ = cmd.Flags().GetString("report-name")
			cliArgs.ReportType, _ = cmd.Flags().GetStringSlice("report-type")
			cliArgs.Dir, _ = cmd.Flags().GetString("dir")
			return app.launcherUseCase.RunExport(cliArgs)
		},
	}
	cmd.Flags().StringP("report-name", "n", "", "Base name for the report files (without extension)")
	cmd.Flags().StringSliceP("report-type", "y", []string{"csv"}, "Report types: csv, json, pdf")
	cmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	return cmd
}

func (app *CLIApp) newWhoAmICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Match the active AWS credentials against the configured directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.preamble()
			cliArgs := app.parseArgs()
			cliArgs.Profile, _ = cmd.Flags().GetString("profile")
			return app.launcherUseCase.RunWhoAmI(context.Background(), cliArgs)
		},
	}
	cmd.Flags().StringP("profile", "p", "", "AWS profile to use (default: \"default\")")
	return cmd
}

// preamble exibe o banner e dispara a verificação de versão em background.
func (app *CLIApp) preamble() {
	displayWelcomeBanner(app.version)
	go version.CheckLatestVersion(app.version)
}

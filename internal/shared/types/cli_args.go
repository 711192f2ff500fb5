package types

// CLIArgs represents the command-line arguments shared by the subcommands.
type CLIArgs struct {
	ConfigFile        string
	OrganizationsFile string
	AccountsFile      string
	CombinedFile      string
	FallbackRole      string
	FallbackRegion    string
	ReportName        string
	ReportType        []string
	Dir               string
	Profile           string
}

package types

// Config represents the application settings that can be loaded from a
// TOML, YAML or JSON file. CLI flags take precedence over file values.
type Config struct {
	OrganizationsFile string   `json:"organizations_file" yaml:"organizations_file" toml:"organizations_file"`
	AccountsFile      string   `json:"accounts_file" yaml:"accounts_file" toml:"accounts_file"`
	CombinedFile      string   `json:"combined_file" yaml:"combined_file" toml:"combined_file"`
	FallbackRole      string   `json:"fallback_role" yaml:"fallback_role" toml:"fallback_role"`
	FallbackRegion    string   `json:"fallback_region" yaml:"fallback_region" toml:"fallback_region"`
	ReportName        string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType        []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir               string   `json:"dir" yaml:"dir" toml:"dir"`
}

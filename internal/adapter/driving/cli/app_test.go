package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCLIAppRegistersSubcommands(t *testing.T) {
	app := NewCLIApp("1.0.0")

	var names []string
	for _, cmd := range app.rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, expected := range []string{"validate", "list", "launch", "example", "export", "whoami"} {
		assert.Contains(t, names, expected)
	}
}

func TestParseArgsReadsPersistentFlags(t *testing.T) {
	app := NewCLIApp("1.0.0")

	flags := app.rootCmd.PersistentFlags()
	require.NoError(t, flags.Set("orgs-file", "orgs.conf"))
	require.NoError(t, flags.Set("accounts-file", "accounts.conf"))
	require.NoError(t, flags.Set("fallback-role", "ReadOnly"))
	require.NoError(t, flags.Set("fallback-region", "us-east-1"))

	args := app.parseArgs()
	assert.Equal(t, "orgs.conf", args.OrganizationsFile)
	assert.Equal(t, "accounts.conf", args.AccountsFile)
	assert.Equal(t, "ReadOnly", args.FallbackRole)
	assert.Equal(t, "us-east-1", args.FallbackRegion)
}

func TestLaunchCommandRequiresAlias(t *testing.T) {
	app := NewCLIApp("1.0.0")

	launch, _, err := app.rootCmd.Find([]string{"launch"})
	require.NoError(t, err)
	assert.Error(t, launch.Args(launch, []string{}))
	assert.NoError(t, launch.Args(launch, []string{"Acct1"}))
}

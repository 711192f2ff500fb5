package sso

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLaunchURL(t *testing.T) {
	url, err := BuildLaunchURL(LaunchRequest{
		SSOBaseURL:     "https://d-1.awsapps.com",
		AccountID:      "415867864530",
		RoleName:       "FC-Admin",
		DestinationURL: "https://console.aws.amazon.com/console/home?region=us-east-1",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"https://d-1.awsapps.com/start/#/console?account_id=415867864530&role_name=FC-Admin&destination=https%3A%2F%2Fconsole.aws.amazon.com%2Fconsole%2Fhome%3Fregion%3Dus-east-1",
		url)
}

func TestBuildLaunchURLTrimsTrailingSlashes(t *testing.T) {
	url, err := BuildLaunchURL(LaunchRequest{
		SSOBaseURL: "https://d-1.awsapps.com///",
		AccountID:  "415867864530",
		RoleName:   "Admin",
	})
	require.NoError(t, err)
	assert.Contains(t, url, "https://d-1.awsapps.com/start/#/console?")
	assert.NotContains(t, url, ".com///start")
}

func TestBuildLaunchURLEncodesRoleOnce(t *testing.T) {
	url, err := BuildLaunchURL(LaunchRequest{
		SSOBaseURL: "https://d-1.awsapps.com",
		AccountID:  "415867864530",
		RoleName:   "Power User",
	})
	require.NoError(t, err)
	assert.Contains(t, url, "role_name=Power+User")
}

func TestBuildLaunchURLMissingParameters(t *testing.T) {
	for _, req := range []LaunchRequest{
		{AccountID: "415867864530", RoleName: "Admin"},
		{SSOBaseURL: "https://d-1.awsapps.com", RoleName: "Admin"},
		{SSOBaseURL: "https://d-1.awsapps.com", AccountID: "415867864530"},
	} {
		_, err := BuildLaunchURL(req)
		assert.Error(t, err)
	}
}

func TestDefaultDestination(t *testing.T) {
	assert.Equal(t, "https://console.aws.amazon.com/console/home?region=us-west-2", DefaultDestination("us-west-2"))
	assert.Equal(t, "https://console.aws.amazon.com/console/home?region=us-east-1", DefaultDestination(""))
	assert.Equal(t, "https://console.aws.amazon.com/console/home?region=eu-west-1", DefaultDestination("  eu-west-1  "))
}

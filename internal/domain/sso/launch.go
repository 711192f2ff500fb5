// Package sso constrói URLs de lançamento do portal AWS IAM Identity Center
// (console de acesso SSO) a partir do diretório resolvido.
package sso

import (
	"fmt"
	"net/url"
	"strings"
)

// FallbackRegion is used when no region survived the whole precedence chain.
const FallbackRegion = "us-east-1"

// LaunchRequest carries everything needed to build a role-assumption launch
// URL for one account.
type LaunchRequest struct {
	SSOBaseURL     string
	AccountID      string
	RoleName       string
	DestinationURL string
}

// BuildLaunchURL constructs the SSO portal console URL:
//
//	{base}/start/#/console?account_id=…&role_name=…&destination=…
//
// The base URL is trimmed of trailing slashes, and the destination is
// URL-encoded exactly once — the portal rejects a double-encoded
// destination parameter.
func BuildLaunchURL(req LaunchRequest) (string, error) {
	if req.SSOBaseURL == "" || req.AccountID == "" || req.RoleName == "" {
		return "", fmt.Errorf("missing required parameters for SSO launch")
	}

	base := strings.TrimRight(req.SSOBaseURL, "/")
	launch := fmt.Sprintf("%s/start/#/console?account_id=%s&role_name=%s&destination=%s",
		base,
		req.AccountID,
		url.QueryEscape(req.RoleName),
		url.QueryEscape(req.DestinationURL),
	)
	return launch, nil
}

// DefaultDestination returns the console home URL for a region, falling back
// to us-east-1 when the region is empty.
func DefaultDestination(region string) string {
	r := strings.TrimSpace(region)
	if r == "" {
		r = FallbackRegion
	}
	return fmt.Sprintf("https://console.aws.amazon.com/console/home?region=%s", r)
}

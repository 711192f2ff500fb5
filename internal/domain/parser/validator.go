package parser

import (
	"fmt"

	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
)

// ValidateOrganizations checks the organization set. A missing SSO base URL
// is an error (nothing can be launched without it); a missing role or
// region is only a warning. An empty set is a warning, not an error — a
// deployment may rely entirely on global fallbacks.
func ValidateOrganizations(orgs *entity.OrganizationSet) entity.ValidationResult {
	errors := []string{}
	warnings := []string{}

	if orgs == nil || orgs.Len() == 0 {
		warnings = append(warnings, "No organizations defined")
		return entity.ValidationResult{Valid: true, Errors: errors, Warnings: warnings}
	}

	for _, org := range orgs.InOrder() {
		if org.SSOBaseURL == "" {
			errors = append(errors, fmt.Sprintf("Organization '%s' missing baseURL (SSO URL)", org.Name))
		}
		if org.RoleName == "" {
			warnings = append(warnings, fmt.Sprintf("Organization '%s' missing roleName", org.Name))
		}
		if org.Region == "" {
			warnings = append(warnings, fmt.Sprintf("Organization '%s' missing region", org.Name))
		}
	}

	return entity.ValidationResult{Valid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

// ValidateAccounts checks the account set against the known organizations
// and, for the legacy combined format, the defaults profiles (nil
// otherwise). No accounts at all is an error — there is nothing to display.
// The account ID format is re-checked here independently of the parse-time
// check.
func ValidateAccounts(accounts *entity.AccountSet, orgs *entity.OrganizationSet, defaults map[string]*entity.DefaultsProfile) entity.ValidationResult {
	errors := []string{}
	warnings := []string{}

	if accounts == nil || accounts.Len() == 0 {
		errors = append(errors, "No accounts defined")
		return entity.ValidationResult{Valid: false, Errors: errors, Warnings: warnings}
	}

	for _, account := range accounts.InOrder() {
		if account.AccountID == "" {
			errors = append(errors, fmt.Sprintf("Account '%s' missing aws_account_id", account.Alias))
		} else if !accountIDPattern.MatchString(account.AccountID) {
			errors = append(errors, fmt.Sprintf("Account '%s' has invalid aws_account_id: %s", account.Alias, account.AccountID))
		}

		if account.OrganizationRef == "" {
			warnings = append(warnings, fmt.Sprintf("Account '%s' missing defaults (organization reference)", account.Alias))
			continue
		}
		if !referenceResolves(account.OrganizationRef, orgs, defaults) {
			errors = append(errors, fmt.Sprintf("Account '%s' references undefined organization '%s'", account.Alias, account.OrganizationRef))
		}
	}

	return entity.ValidationResult{Valid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

// ValidateCombined runs both checks and merges them: the union of errors and
// warnings, valid only when no errors exist on either side.
func ValidateCombined(orgs *entity.OrganizationSet, accounts *entity.AccountSet, defaults map[string]*entity.DefaultsProfile) entity.ValidationResult {
	return ValidateOrganizations(orgs).Merge(ValidateAccounts(accounts, orgs, defaults))
}

func referenceResolves(ref string, orgs *entity.OrganizationSet, defaults map[string]*entity.DefaultsProfile) bool {
	if orgs != nil && orgs.Get(ref) != nil {
		return true
	}
	_, ok := defaults[ref]
	return ok
}

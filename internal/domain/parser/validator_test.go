package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
)

func TestValidateOrganizationsMissingFields(t *testing.T) {
	orgs := ParseOrganizationsConfig(`[Complete]
region = us-east-1
roleName = Admin
baseURL = https://d-1.awsapps.com

[Bare]
default = true`)

	result := ValidateOrganizations(orgs)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Organization 'Bare' missing baseURL (SSO URL)")
	assert.Contains(t, result.Warnings, "Organization 'Bare' missing roleName")
	assert.Contains(t, result.Warnings, "Organization 'Bare' missing region")
	assert.Len(t, result.Errors, 1)
}

func TestValidateOrganizationsEmptySetIsWarningOnly(t *testing.T) {
	result := ValidateOrganizations(entity.NewOrganizationSet())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Contains(t, result.Warnings, "No organizations defined")

	result = ValidateOrganizations(nil)
	assert.True(t, result.Valid)
}

func TestValidateAccountsNoAccountsIsError(t *testing.T) {
	result := ValidateAccounts(entity.NewAccountSet(), nil, nil)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "No accounts defined")
}

func TestValidateAccountsChecks(t *testing.T) {
	orgs := ParseOrganizationsConfig(`[Corpay]
region = us-east-1
roleName = Admin
baseURL = https://d-1.awsapps.com`)

	accounts := entity.NewAccountSet()
	accounts.Add(&entity.Account{Alias: "NoID"})
	accounts.Add(&entity.Account{Alias: "BadID", AccountID: "123"})
	accounts.Add(&entity.Account{Alias: "Dangling", AccountID: "123456789012", OrganizationRef: "NoSuchOrg"})
	accounts.Add(&entity.Account{Alias: "NoRef", AccountID: "123456789012"})
	accounts.Add(&entity.Account{Alias: "Good", AccountID: "123456789012", OrganizationRef: "Corpay"})

	result := ValidateAccounts(accounts, orgs, nil)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Account 'NoID' missing aws_account_id")
	assert.Contains(t, result.Errors, "Account 'BadID' has invalid aws_account_id: 123")
	assert.Contains(t, result.Errors, "Account 'Dangling' references undefined organization 'NoSuchOrg'")
	assert.Contains(t, result.Warnings, "Account 'NoRef' missing defaults (organization reference)")
	assert.Len(t, result.Errors, 3)
	assert.Len(t, result.Warnings, 3) // NoID and BadID also lack references
}

func TestValidateAccountsReferenceThroughDefaultsProfile(t *testing.T) {
	defaults := map[string]*entity.DefaultsProfile{
		"Shared": {Name: "Shared", Region: "us-east-1", OrganizationRef: "Corpay"},
	}
	accounts := entity.NewAccountSet()
	accounts.Add(&entity.Account{Alias: "ViaProfile", AccountID: "123456789012", OrganizationRef: "Shared"})

	result := ValidateAccounts(accounts, entity.NewOrganizationSet(), defaults)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateCombinedMergesBothSides(t *testing.T) {
	orgs := ParseOrganizationsConfig(`[NoURL]
region = us-east-1
roleName = Admin`)
	accounts := entity.NewAccountSet()
	accounts.Add(&entity.Account{Alias: "A", AccountID: "123456789012", OrganizationRef: "NoURL"})

	result := ValidateCombined(orgs, accounts, nil)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "NoURL")

	// Warnings never affect validity.
	good := ParseOrganizationsConfig(`[Org]
baseURL = https://d-1.awsapps.com`)
	okAccounts := entity.NewAccountSet()
	okAccounts.Add(&entity.Account{Alias: "A", AccountID: "123456789012", OrganizationRef: "Org"})
	result = ValidateCombined(good, okAccounts, nil)
	assert.True(t, result.Valid)
	assert.NotEmpty(t, result.Warnings) // Org lacks roleName and region
}

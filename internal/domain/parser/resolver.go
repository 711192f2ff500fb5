package parser

import (
	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
)

// DefaultOrganization é o nome da organização implícita atribuída a contas
// sem referência, ou cuja referência não resolve.
const DefaultOrganization = "Default"

// Fallback supplies the caller's last-resort effective role and region,
// applied when neither the account nor its organization declares one.
type Fallback struct {
	RoleName string
	Region   string
}

// Resolve builds the resolved directory from classified organizations,
// legacy defaults profiles (nil outside the combined format) and accounts.
// The same precedence chain is applied to every account regardless of which
// parse mode produced it: own override → referenced organization or profile
// → fallback. A dangling reference degrades to the implicit "Default"
// organization; the validator reports it, resolution never fails.
func Resolve(orgs *entity.OrganizationSet, defaults map[string]*entity.DefaultsProfile, accounts *entity.AccountSet, fallback Fallback) *entity.Directory {
	dir := entity.NewDirectory()

	if orgs != nil {
		for _, org := range orgs.InOrder() {
			dir.Organizations[org.Name] = org
			dir.OrganizationOrder = append(dir.OrganizationOrder, org.Name)
		}
	}
	for name, profile := range defaults {
		dir.Defaults[name] = profile
	}

	if accounts != nil {
		for _, account := range accounts.InOrder() {
			resolveAccount(dir, account, fallback)
			dir.Accounts[account.Alias] = account
			dir.AccountOrder = append(dir.AccountOrder, account.Alias)
		}
	}

	dir.Groups, dir.GroupOrder = BuildGroups(dir.AccountsInOrder())
	return dir
}

// resolveAccount follows the account's `defaults` reference through at most
// one defaults profile to an organization and computes the effective role
// and region.
func resolveAccount(dir *entity.Directory, account *entity.Account, fallback Fallback) {
	var inheritedRegion, inheritedRole string
	account.Organization = DefaultOrganization

	if ref := account.OrganizationRef; ref != "" {
		if org := dir.Organizations[ref]; org != nil {
			account.Organization = ref
			inheritedRegion = org.Region
			inheritedRole = org.RoleName
		} else if profile := dir.Defaults[ref]; profile != nil {
			// The profile's own values feed the precedence chain; only the
			// organization name resolves through the indirection, and only
			// one hop is followed.
			inheritedRegion = profile.Region
			inheritedRole = profile.RoleName
			if profile.OrganizationRef != "" && dir.Organizations[profile.OrganizationRef] != nil {
				account.Organization = profile.OrganizationRef
			}
		}
	}

	account.EffectiveRegion = firstNonEmpty(account.RegionOverride, inheritedRegion, fallback.Region)
	account.EffectiveRoleName = firstNonEmpty(account.RoleOverride, inheritedRole, fallback.RoleName)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

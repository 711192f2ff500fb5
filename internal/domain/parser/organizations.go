package parser

import (
	"strings"

	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
)

// ParseOrganizationsConfig parses text in which every section is an
// organization. Key aliases are normalized (role → roleName,
// baseURL/baseUrl → ssoBaseUrl, alternative_roles → altRoles); unrecognized
// keys are retained verbatim for forward compatibility. Organizations mode
// has no fatal failures — an empty or nil-equivalent text yields an empty
// set.
func ParseOrganizationsConfig(text string) *entity.OrganizationSet {
	set := entity.NewOrganizationSet()
	for _, section := range ParseSections(text) {
		set.Add(organizationFromSection(section))
	}
	return set
}

func organizationFromSection(section *entity.Section) *entity.Organization {
	org := &entity.Organization{Name: section.Name}

	for _, key := range section.Fields.Keys() {
		value := section.Fields.Get(key)
		switch key {
		case "region":
			org.Region = value
		case "roleName", "role":
			org.RoleName = value
		case "ssoBaseUrl", "baseURL", "baseUrl":
			org.SSOBaseURL = value
		case "default":
			org.Default = value == "true"
		case "altRoles", "alternative_roles":
			org.AltRoles = splitRoleList(value)
		default:
			if org.Extra == nil {
				org.Extra = make(map[string]string)
			}
			org.Extra[key] = value
		}
	}

	// A organização nunca lista o próprio roleName entre as alternativas.
	org.AltRoles = withoutRole(org.AltRoles, org.RoleName)
	return org
}

// splitRoleList splits a comma-separated role list, trimming each entry and
// dropping empties and duplicates while preserving first-seen order.
func splitRoleList(value string) []string {
	var roles []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(value, ",") {
		role := strings.TrimSpace(part)
		if role == "" || seen[role] {
			continue
		}
		seen[role] = true
		roles = append(roles, role)
	}
	return roles
}

func withoutRole(roles []string, exclude string) []string {
	if exclude == "" || len(roles) == 0 {
		return roles
	}
	filtered := roles[:0]
	for _, role := range roles {
		if role != exclude {
			filtered = append(filtered, role)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}

package parser

import (
	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
)

// SectionKind is the semantic kind assigned to a section of the legacy
// combined format.
type SectionKind int

const (
	KindUnrecognized SectionKind = iota
	KindOrganization
	KindDefaultsProfile
	KindAccount
)

// ClassifySection decides what a legacy combined-format section is, in
// strict precedence order: an account ID field makes it an account; an
// `organization = true` flag makes it an organization; a region or role
// field makes it a defaults profile; anything else is unrecognized and
// dropped.
func ClassifySection(section *entity.Section) SectionKind {
	switch {
	case section.Fields.Has("aws_account_id") || section.Fields.Has("accountId"):
		return KindAccount
	case section.Fields.Get("organization") == "true":
		return KindOrganization
	case section.Fields.Has("region") || section.Fields.Has("roleName") || section.Fields.Has("role"):
		return KindDefaultsProfile
	default:
		return KindUnrecognized
	}
}

// CombinedConfig holds the classified sections of the legacy single-text
// format, ready to hand to Resolve.
type CombinedConfig struct {
	Organizations *entity.OrganizationSet
	Defaults      map[string]*entity.DefaultsProfile
	Accounts      *entity.AccountSet
}

// ParseCombinedConfig parses a legacy single text mixing organizations,
// defaults profiles and accounts, classifying each section by field
// presence. Account ID validation is as fatal here as in accounts mode.
func ParseCombinedConfig(text string) (*CombinedConfig, error) {
	cfg := &CombinedConfig{
		Organizations: entity.NewOrganizationSet(),
		Defaults:      make(map[string]*entity.DefaultsProfile),
		Accounts:      entity.NewAccountSet(),
	}

	for _, section := range ParseSections(text) {
		switch ClassifySection(section) {
		case KindAccount:
			account, err := accountFromSection(section)
			if err != nil {
				return nil, err
			}
			cfg.Accounts.Add(account)
		case KindOrganization:
			org := organizationFromSection(section)
			// O marcador `organization = true` é só classificação, não um
			// campo da organização.
			delete(org.Extra, "organization")
			if len(org.Extra) == 0 {
				org.Extra = nil
			}
			cfg.Organizations.Add(org)
		case KindDefaultsProfile:
			cfg.Defaults[section.Name] = defaultsProfileFromSection(section)
		case KindUnrecognized:
			// dropped
		}
	}

	return cfg, nil
}

func defaultsProfileFromSection(section *entity.Section) *entity.DefaultsProfile {
	profile := &entity.DefaultsProfile{Name: section.Name}
	for _, key := range section.Fields.Keys() {
		value := section.Fields.Get(key)
		switch key {
		case "region":
			profile.Region = value
		case "roleName", "role":
			profile.RoleName = value
		case "defaults":
			profile.OrganizationRef = value
		}
	}
	return profile
}

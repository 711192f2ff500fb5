package parser

import (
	"regexp"

	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
)

var accountIDPattern = regexp.MustCompile(`^\d{12}$`)

// ParseAccountsConfig parses text in which every section is an account. An
// account ID that is not exactly 12 decimal digits is a fatal *ParseError
// carrying the originating line and value; the whole call fails and no
// partial result is returned.
func ParseAccountsConfig(text string) (*entity.AccountSet, error) {
	set := entity.NewAccountSet()
	for _, section := range ParseSections(text) {
		account, err := accountFromSection(section)
		if err != nil {
			return nil, err
		}
		set.Add(account)
	}
	return set, nil
}

func accountFromSection(section *entity.Section) (*entity.Account, error) {
	account := &entity.Account{Alias: section.Name, Name: section.Name}

	for _, key := range section.Fields.Keys() {
		value := section.Fields.Get(key)
		switch key {
		case "aws_account_id", "accountId":
			if !accountIDPattern.MatchString(value) {
				return nil, &ParseError{Line: section.Fields.Line(key), Value: value}
			}
			account.AccountID = value
		case "defaults":
			account.OrganizationRef = value
		case "group":
			account.Group = value
		case "region":
			account.RegionOverride = value
		case "roleName", "role":
			account.RoleOverride = value
		case "alias", "name":
			account.Name = value
		}
	}

	return account, nil
}

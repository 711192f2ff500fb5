package parser

import (
	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
)

// DefaultGroup é o grupo implícito de contas que não declaram `group`.
const DefaultGroup = "Default"

// BuildGroups partitions accounts into named groups: each account goes to
// the group named by its `group` field, or to "Default" when absent. Groups
// are created lazily in first-seen order; within a group, accounts keep
// their declaration order. Nothing is reordered or deduplicated.
func BuildGroups(accounts []*entity.Account) (map[string]*entity.Group, []string) {
	groups := make(map[string]*entity.Group)
	var order []string

	for _, account := range accounts {
		name := account.Group
		if name == "" {
			name = DefaultGroup
		}
		group, ok := groups[name]
		if !ok {
			group = &entity.Group{Name: name}
			groups[name] = group
			order = append(order, name)
		}
		group.Accounts = append(group.Accounts, account)
	}

	return groups, order
}

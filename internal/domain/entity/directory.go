package entity

// Directory is the fully resolved configuration: organizations, the legacy
// defaults profiles (combined format only), accounts with their effective
// values filled in, and the derived display groups.
type Directory struct {
	Organizations map[string]*Organization    `json:"organizations"`
	Defaults      map[string]*DefaultsProfile `json:"defaults,omitempty"`
	Accounts      map[string]*Account         `json:"accounts"`
	Groups        map[string]*Group           `json:"groups"`

	// Declaration / first-seen orderings, preserved for display.
	OrganizationOrder []string `json:"-"`
	AccountOrder      []string `json:"-"`
	GroupOrder        []string `json:"-"`
}

// NewDirectory cria um diretório vazio.
func NewDirectory() *Directory {
	return &Directory{
		Organizations: make(map[string]*Organization),
		Defaults:      make(map[string]*DefaultsProfile),
		Accounts:      make(map[string]*Account),
		Groups:        make(map[string]*Group),
	}
}

// GroupsInOrder returns the groups in first-seen order.
func (d *Directory) GroupsInOrder() []*Group {
	groups := make([]*Group, 0, len(d.GroupOrder))
	for _, name := range d.GroupOrder {
		groups = append(groups, d.Groups[name])
	}
	return groups
}

// AccountsInOrder returns the accounts in declaration order.
func (d *Directory) AccountsInOrder() []*Account {
	accounts := make([]*Account, 0, len(d.AccountOrder))
	for _, alias := range d.AccountOrder {
		accounts = append(accounts, d.Accounts[alias])
	}
	return accounts
}

// OrganizationsInOrder returns the organizations in declaration order.
func (d *Directory) OrganizationsInOrder() []*Organization {
	orgs := make([]*Organization, 0, len(d.OrganizationOrder))
	for _, name := range d.OrganizationOrder {
		orgs = append(orgs, d.Organizations[name])
	}
	return orgs
}

// OrganizationFor returns the resolved organization for an account, or nil
// when the account resolved to the implicit "Default" organization.
func (d *Directory) OrganizationFor(account *Account) *Organization {
	if account == nil {
		return nil
	}
	return d.Organizations[account.Organization]
}

// FindByAccountID returns every account carrying the given 12-digit ID, in
// declaration order. Aliases are display identity; the numeric ID is the
// natural one and may legitimately repeat across aliases.
func (d *Directory) FindByAccountID(accountID string) []*Account {
	var matches []*Account
	for _, account := range d.AccountsInOrder() {
		if account.AccountID == accountID {
			matches = append(matches, account)
		}
	}
	return matches
}

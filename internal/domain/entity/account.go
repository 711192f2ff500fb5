package entity

// Account is a single launchable target identified by a 12-digit AWS account
// ID. The Override fields hold what the configuration text declared
// explicitly; the Effective fields are filled in at resolution time by
// falling back through the referenced organization to the global fallback.
type Account struct {
	Alias          string `json:"alias"`
	Name           string `json:"name"`
	AccountID      string `json:"accountId"`
	Group          string `json:"group,omitempty"`
	RoleOverride   string `json:"roleOverride,omitempty"`
	RegionOverride string `json:"regionOverride,omitempty"`

	// OrganizationRef is the raw `defaults` reference from the text;
	// Organization is the resolved organization name ("Default" when the
	// reference is absent or dangling).
	OrganizationRef string `json:"defaults,omitempty"`
	Organization    string `json:"organization,omitempty"`

	EffectiveRoleName string `json:"effectiveRoleName,omitempty"`
	EffectiveRegion   string `json:"effectiveRegion,omitempty"`
}

// AccountSet holds accounts by alias plus their declaration order.
type AccountSet struct {
	Accounts map[string]*Account `json:"accounts"`
	Order    []string            `json:"-"`
}

// NewAccountSet cria um conjunto vazio de contas.
func NewAccountSet() *AccountSet {
	return &AccountSet{Accounts: make(map[string]*Account)}
}

// Add inserts an account. A repeated alias replaces the earlier entry
// (last-wins) but keeps its original position in the declaration order.
func (s *AccountSet) Add(account *Account) {
	if _, ok := s.Accounts[account.Alias]; !ok {
		s.Order = append(s.Order, account.Alias)
	}
	s.Accounts[account.Alias] = account
}

// Get returns the account with the given alias, or nil.
func (s *AccountSet) Get(alias string) *Account {
	return s.Accounts[alias]
}

// Len returns the number of accounts.
func (s *AccountSet) Len() int {
	return len(s.Accounts)
}

// InOrder returns the accounts in declaration order.
func (s *AccountSet) InOrder() []*Account {
	accounts := make([]*Account, 0, len(s.Order))
	for _, alias := range s.Order {
		accounts = append(accounts, s.Accounts[alias])
	}
	return accounts
}

package entity

// Organization is a named bundle of launch defaults shared by many accounts:
// the SSO portal base URL, a default role and region, and the alternate roles
// offered at launch time.
type Organization struct {
	Name       string            `json:"name"`
	Region     string            `json:"region,omitempty"`
	RoleName   string            `json:"roleName,omitempty"`
	SSOBaseURL string            `json:"ssoBaseUrl,omitempty"`
	Default    bool              `json:"default,omitempty"`
	AltRoles   []string          `json:"altRoles,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// OrganizationSet holds organizations by name plus their declaration order.
type OrganizationSet struct {
	Organizations map[string]*Organization `json:"organizations"`
	Order         []string                 `json:"-"`
}

// NewOrganizationSet cria um conjunto vazio de organizações.
func NewOrganizationSet() *OrganizationSet {
	return &OrganizationSet{Organizations: make(map[string]*Organization)}
}

// Add inserts an organization. A repeated name replaces the earlier entry
// (last-wins) but keeps its original position in the declaration order.
func (s *OrganizationSet) Add(org *Organization) {
	if _, ok := s.Organizations[org.Name]; !ok {
		s.Order = append(s.Order, org.Name)
	}
	s.Organizations[org.Name] = org
}

// Get returns the organization with the given name, or nil.
func (s *OrganizationSet) Get(name string) *Organization {
	return s.Organizations[name]
}

// Len returns the number of organizations.
func (s *OrganizationSet) Len() int {
	return len(s.Organizations)
}

// InOrder returns the organizations in declaration order.
func (s *OrganizationSet) InOrder() []*Organization {
	orgs := make([]*Organization, 0, len(s.Order))
	for _, name := range s.Order {
		orgs = append(orgs, s.Organizations[name])
	}
	return orgs
}

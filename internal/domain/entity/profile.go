package entity

// DefaultsProfile é a camada de indireção do formato combinado legado: uma
// seção de padrões que pode apontar para uma organização através do campo
// `defaults`.
type DefaultsProfile struct {
	Name            string `json:"name"`
	Region          string `json:"region,omitempty"`
	RoleName        string `json:"roleName,omitempty"`
	OrganizationRef string `json:"defaults,omitempty"`
}

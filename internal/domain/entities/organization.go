package entities

// Organization is one organization of the authenticated user, as served by
// the organizations endpoint.
type Organization struct {
	Login       string `json:"login"`
	ReposURL    string `json:"repos_url"`
	Description string `json:"description"`
}

// Label renders the short menu label for this organization.
func (o Organization) Label() string {
	return o.Login
}

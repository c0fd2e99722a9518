package entities

// Repository is one repository of an organization, as served by the
// (possibly paginated) repository list endpoint.
type Repository struct {
	Name     string `json:"name"`
	SSHURL   string `json:"ssh_url"`
	CloneURL string `json:"clone_url"`
}

// Label renders the short menu label for this repository.
func (r Repository) Label() string {
	return r.Name
}

// URLFor returns the clone URL for the given protocol, falling back to
// whichever URL the API served when the preferred one is absent.
func (r Repository) URLFor(protocol string) string {
	if protocol == CloneProtocolHTTPS {
		if r.CloneURL != "" {
			return r.CloneURL
		}
		return r.SSHURL
	}
	if r.SSHURL != "" {
		return r.SSHURL
	}
	return r.CloneURL
}

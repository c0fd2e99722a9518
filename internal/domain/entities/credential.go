package entities

// Credential carries the HTTP Basic credentials sent on every API request.
// It lives for a single run and is never written to disk.
type Credential struct {
	Username string
	Token    string
}

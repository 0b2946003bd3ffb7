package apimodels

// FoundCredential is one search hit with its password resolved.
type FoundCredential struct {
	Id       string
	Name     string
	Username string
	Password string
	Path     string
}

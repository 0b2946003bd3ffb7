package apimodels

// CredentialRecord is the assembled result of a credential lookup.
type CredentialRecord struct {
	Username string
	Password string
}

package clientmodels

type TokenLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (r TokenLoginResponse) HasToken() bool {
	return r.AccessToken != ""
}

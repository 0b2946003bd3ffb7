package constants

import "time"

const (
	API_PREFIX     = "/api/v5/rest"
	TOKEN_PATH     = "/oauth2/token"
	DefaultApiPort = "10001"
	DefaultTimeout = 5 * time.Second

	// Token used when the server's token response carries no access_token
	// field. Compatibility behaviour inherited from the v5 API clients.
	FallbackAccessToken = "default"
)

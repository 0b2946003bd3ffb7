package authenticator

import (
	"context"
	"time"

	"terraform-provider-pleasant/internal/helpers"

	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// GetAuthenticator acquires a bearer token for the workflow. The data source
// authenticator block, when present, wins over the provider credentials.
// usedFallback reports that the server answered the token call without an
// access_token field and the fallback token is in play.
func GetAuthenticator(ctx context.Context, host, username, password string, override *Authentication, tlsPolicy helpers.TlsPolicy, timeout time.Duration) (auth *helpers.HttpCallerAuth, usedFallback bool, err error) {
	if override != nil && override.Username.ValueString() != "" {
		username = override.Username.ValueString()
		password = override.Password.ValueString()
		tflog.Debug(ctx, "Using data source authenticator credentials for "+username)
	}

	client := helpers.NewHttpCaller(ctx, tlsPolicy, timeout)
	token, usedFallback, err := client.GetAccessToken(host, username, password)
	if err != nil {
		return nil, false, err
	}

	return &helpers.HttpCallerAuth{BearerToken: token}, usedFallback, nil
}

package apiclient

import (
	"context"

	"terraform-provider-pleasant/internal/apiclient/apimodels"
	"terraform-provider-pleasant/internal/helpers"
	"terraform-provider-pleasant/internal/schemas/authenticator"

	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// FetchCredential runs the whole lookup workflow for one entry: token, entry
// metadata, entry password. On success it returns a single-element list; on
// any failure it returns no records at all. The same token is used for both
// entry calls and is never reused across invocations.
func FetchCredential(ctx context.Context, config HostConfig, entryId string) ([]apimodels.CredentialRecord, bool, diag.Diagnostics) {
	diagnostics := diag.Diagnostics{}
	urlHost := helpers.GetHostUrl(config.Host)

	auth, usedFallback, err := authenticator.GetAuthenticator(ctx, urlHost, config.Username, config.Password, config.Authorization, config.TlsPolicy(), config.Timeout)
	if err != nil {
		diagnostics.AddError("There was an error getting the authenticator", err.Error())
		return nil, false, diagnostics
	}

	entry, diags := GetEntry(ctx, config, entryId, auth)
	diagnostics.Append(diags...)
	if diagnostics.HasError() {
		return nil, usedFallback, diagnostics
	}

	password, diags := GetEntryPassword(ctx, config, entryId, auth)
	diagnostics.Append(diags...)
	if diagnostics.HasError() {
		return nil, usedFallback, diagnostics
	}

	tflog.Info(ctx, "Resolved credential for entry "+entryId)

	records := []apimodels.CredentialRecord{
		{
			Username: *entry.Username,
			Password: password,
		},
	}

	return records, usedFallback, diagnostics
}

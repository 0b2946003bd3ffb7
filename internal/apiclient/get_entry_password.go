package apiclient

import (
	"context"
	"fmt"

	"terraform-provider-pleasant/internal/helpers"

	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

func GetEntryPassword(ctx context.Context, config HostConfig, entryId string, auth *helpers.HttpCallerAuth) (string, diag.Diagnostics) {
	diagnostics := diag.Diagnostics{}
	if entryId == "" {
		diagnostics.AddError("There was an error getting the entry password", "entryId is empty")
		return "", diagnostics
	}

	urlHost := helpers.GetHostUrl(config.Host)
	url := fmt.Sprintf("%s/entries/%s/password", helpers.GetHostApiBaseUrl(urlHost), helpers.CleanUrlSuffixAndPrefix(entryId))

	var payload interface{}
	client := helpers.NewHttpCaller(ctx, config.TlsPolicy(), config.Timeout)
	if clientResponse, err := client.GetDataFromClient(url, config.EntryHeaders(), auth, &payload); err != nil {
		if clientResponse != nil && clientResponse.ApiError != nil {
			tflog.Error(ctx, fmt.Sprintf("Error getting entry password: %v, api message: %s", err, clientResponse.ApiError.Message))
		}
		diagnostics.AddError("There was an error getting the entry password", err.Error())
		return "", diagnostics
	}

	password, ok := normalizeText(payload)
	if !ok {
		diagnostics.AddError(
			"There was an error decoding the entry password",
			"the response did not contain a password payload",
		)
		return "", diagnostics
	}

	tflog.Debug(ctx, "Got password for entry "+entryId)

	return password, diagnostics
}

// normalizeText renders the JSON payload of the password endpoint as text.
// The server answers with a JSON encoded string but other scalar values are
// accepted; a JSON null is not a password.
func normalizeText(payload interface{}) (string, bool) {
	switch value := payload.(type) {
	case nil:
		return "", false
	case string:
		return value, true
	default:
		return fmt.Sprintf("%v", value), true
	}
}

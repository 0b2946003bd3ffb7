package apiclient

import (
	"context"
	"fmt"

	"terraform-provider-pleasant/internal/apiclient/apimodels"
	"terraform-provider-pleasant/internal/helpers"

	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

func GetEntry(ctx context.Context, config HostConfig, entryId string, auth *helpers.HttpCallerAuth) (*apimodels.Entry, diag.Diagnostics) {
	diagnostics := diag.Diagnostics{}
	if entryId == "" {
		diagnostics.AddError("There was an error getting the entry", "entryId is empty")
		return nil, diagnostics
	}

	urlHost := helpers.GetHostUrl(config.Host)
	url := fmt.Sprintf("%s/entries/%s", helpers.GetHostApiBaseUrl(urlHost), helpers.CleanUrlSuffixAndPrefix(entryId))

	var response apimodels.Entry
	client := helpers.NewHttpCaller(ctx, config.TlsPolicy(), config.Timeout)
	if clientResponse, err := client.GetDataFromClient(url, config.EntryHeaders(), auth, &response); err != nil {
		if clientResponse != nil && clientResponse.ApiError != nil {
			tflog.Error(ctx, fmt.Sprintf("Error getting entry: %v, api message: %s", err, clientResponse.ApiError.Message))
		}
		diagnostics.AddError("There was an error getting the entry", err.Error())
		return nil, diagnostics
	}

	if response.Username == nil {
		diagnostics.AddError(
			"There was an error decoding the entry",
			"the response did not contain a Username field",
		)
		return nil, diagnostics
	}

	tflog.Info(ctx, "Got entry "+response.Name)

	return &response, diagnostics
}

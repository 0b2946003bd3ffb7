package apiclient

import (
	"context"
	"fmt"
	"strconv"

	"terraform-provider-pleasant/internal/apiclient/apimodels"
	"terraform-provider-pleasant/internal/helpers"
	"terraform-provider-pleasant/internal/schemas/authenticator"
	"terraform-provider-pleasant/internal/schemas/filter"

	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// SearchEntries searches the vault by text, keeps the entries passing the
// filter and resolves the password of each one with the same token. A failed
// password fetch aborts the whole search.
func SearchEntries(ctx context.Context, config HostConfig, search string, entryFilter *filter.Filter) ([]apimodels.FoundCredential, bool, diag.Diagnostics) {
	diagnostics := diag.Diagnostics{}
	if search == "" {
		diagnostics.AddError("There was an error searching for entries", "search text is empty")
		return nil, false, diagnostics
	}

	urlHost := helpers.GetHostUrl(config.Host)
	url := fmt.Sprintf("%s/search", helpers.GetHostApiBaseUrl(urlHost))

	auth, usedFallback, err := authenticator.GetAuthenticator(ctx, urlHost, config.Username, config.Password, config.Authorization, config.TlsPolicy(), config.Timeout)
	if err != nil {
		diagnostics.AddError("There was an error getting the authenticator", err.Error())
		return nil, false, diagnostics
	}

	request := apimodels.SearchRequest{Search: search}

	var response apimodels.SearchResponse
	client := helpers.NewHttpCaller(ctx, config.TlsPolicy(), config.Timeout)
	if clientResponse, err := client.PostDataToClient(url, config.EntryHeaders(), request, auth, &response); err != nil {
		if clientResponse != nil && clientResponse.ApiError != nil {
			tflog.Error(ctx, fmt.Sprintf("Error searching entries: %v, api message: %s", err, clientResponse.ApiError.Message))
		}
		diagnostics.AddError("There was an error searching for entries", err.Error())
		return nil, usedFallback, diagnostics
	}

	found := make([]apimodels.FoundCredential, 0, len(response.Credentials))
	for _, credential := range response.Credentials {
		if !entryFilter.Matches(credential.Path, credential.Username) {
			continue
		}

		password, diags := GetEntryPassword(ctx, config, credential.Id, auth)
		diagnostics.Append(diags...)
		if diagnostics.HasError() {
			return nil, usedFallback, diagnostics
		}

		found = append(found, apimodels.FoundCredential{
			Id:       credential.Id,
			Name:     credential.Name,
			Username: credential.Username,
			Password: password,
			Path:     credential.Path,
		})
	}

	tflog.Info(ctx, "Search matched "+strconv.Itoa(len(found))+" entries")

	return found, usedFallback, diagnostics
}

package entries

import (
	"context"
	"fmt"
	"time"

	"terraform-provider-pleasant/internal/apiclient"
	"terraform-provider-pleasant/internal/models"
	"terraform-provider-pleasant/internal/telemetry"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var (
	_ datasource.DataSource              = &EntriesDataSource{}
	_ datasource.DataSourceWithConfigure = &EntriesDataSource{}
)

func NewEntriesDataSource() datasource.DataSource {
	return &EntriesDataSource{}
}

type EntriesDataSource struct {
	provider *models.PleasantProviderModel
}

func (d *EntriesDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}

	data, ok := req.ProviderData.(*models.PleasantProviderModel)
	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Data Source Configure Type",
			fmt.Sprintf("Expected *models.PleasantProviderModel, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)
		return
	}

	d.provider = data
}

func (d *EntriesDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_entries"
}

func (d *EntriesDataSource) Schema(ctx context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = entriesDataSourceSchema(ctx)
}

func (d *EntriesDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data entriesDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	telemetrySvc := telemetry.Get(ctx)
	telemetryEvent := telemetry.NewTelemetryItem(
		ctx,
		d.provider.Host.ValueString(),
		telemetry.EventSearch, telemetry.ModeRead,
		nil,
		nil,
	)
	telemetrySvc.TrackEvent(telemetryEvent)

	readTimeout, diags := data.Timeouts.Read(ctx, 30*time.Second)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	hostConfig, diags := d.provider.HostConfig(ctx)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	hostConfig.Authorization = data.Authenticator

	found, usedFallback, diags := apiclient.SearchEntries(ctx, hostConfig, data.Search.ValueString(), data.Filter)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	if usedFallback {
		resp.Diagnostics.AddWarning(
			"Token response carried no access_token field",
			"The server answered the token call without an access_token field; the search proceeded with the fallback token. Check the server's oauth2 configuration.",
		)
	}

	data.Entries = make([]entryModel, 0, len(found))
	for _, credential := range found {
		data.Entries = append(data.Entries, entryModel{
			Id:       types.StringValue(credential.Id),
			Name:     types.StringValue(credential.Name),
			Username: types.StringValue(credential.Username),
			Password: types.StringValue(credential.Password),
			Path:     types.StringValue(credential.Path),
		})
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

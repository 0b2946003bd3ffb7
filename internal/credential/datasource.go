package credential

import (
	"context"
	"fmt"
	"time"

	"terraform-provider-pleasant/internal/apiclient"
	"terraform-provider-pleasant/internal/models"
	"terraform-provider-pleasant/internal/telemetry"

	"github.com/google/uuid"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var (
	_ datasource.DataSource              = &CredentialDataSource{}
	_ datasource.DataSourceWithConfigure = &CredentialDataSource{}
)

func NewCredentialDataSource() datasource.DataSource {
	return &CredentialDataSource{}
}

type CredentialDataSource struct {
	provider *models.PleasantProviderModel
}

func (d *CredentialDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
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

func (d *CredentialDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_credential"
}

func (d *CredentialDataSource) Schema(ctx context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = credentialDataSourceSchema(ctx)
}

func (d *CredentialDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data credentialDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	telemetrySvc := telemetry.Get(ctx)
	telemetryEvent := telemetry.NewTelemetryItem(
		ctx,
		d.provider.Host.ValueString(),
		telemetry.EventCredential, telemetry.ModeRead,
		nil,
		nil,
	)
	telemetrySvc.TrackEvent(telemetryEvent)

	entryId := data.EntryId.ValueString()
	if _, err := uuid.Parse(entryId); err != nil {
		resp.Diagnostics.AddError("entry_id is not a valid GUID", err.Error())
		return
	}

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

	records, usedFallback, diags := apiclient.FetchCredential(ctx, hostConfig, entryId)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	if usedFallback {
		resp.Diagnostics.AddWarning(
			"Token response carried no access_token field",
			"The server answered the token call without an access_token field; the lookup proceeded with the fallback token. Check the server's oauth2 configuration.",
		)
	}

	data.Credentials = make([]credentialModel, 0, len(records))
	for _, record := range records {
		data.Credentials = append(data.Credentials, credentialModel{
			Username: types.StringValue(record.Username),
			Password: types.StringValue(record.Password),
		})
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

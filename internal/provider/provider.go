package provider

import (
	"context"

	"terraform-provider-pleasant/internal/credential"
	"terraform-provider-pleasant/internal/entries"
	"terraform-provider-pleasant/internal/models"

	"github.com/hashicorp/terraform-plugin-framework-validators/float64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Ensure the implementation satisfies the expected interfaces.
var (
	_ provider.Provider = &PleasantProvider{}
)

// New is a helper function to simplify provider server and testing implementation.
func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &PleasantProvider{
			version: version,
		}
	}
}

// PleasantProvider is the provider implementation.
type PleasantProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
}

// Metadata returns the provider type name.
func (p *PleasantProvider) Metadata(_ context.Context, _ provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "pleasant"
	resp.Version = p.version
}

// Schema defines the provider-level schema for configuration data.
func (p *PleasantProvider) Schema(_ context.Context, _ provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		Attributes: map[string]schema.Attribute{
			"host": schema.StringAttribute{
				MarkdownDescription: "Base URL of the Pleasant Password Server, e.g. `https://vault.example.com:10001`",
				Required:            true,
			},
			"username": schema.StringAttribute{
				MarkdownDescription: "Username for the oauth2 password grant",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.AlsoRequires(path.Expressions{
						path.MatchRoot("password"),
					}...),
				},
			},
			"password": schema.StringAttribute{
				MarkdownDescription: "Password for the oauth2 password grant",
				Optional:            true,
				Sensitive:           true,
				Validators: []validator.String{
					stringvalidator.AlsoRequires(path.Expressions{
						path.MatchRoot("username"),
					}...),
				},
			},
			"ca_bundle_path": schema.StringAttribute{
				MarkdownDescription: "Path to a CA bundle used to verify the server certificate, e.g. `/etc/ssl/certs/ca-bundle.crt`. Defaults to the system trust store.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.ConflictsWith(path.Expressions{
						path.MatchRoot("disable_tls_validation"),
					}...),
				},
			},
			"disable_tls_validation": schema.BoolAttribute{
				MarkdownDescription: "Disable TLS certificate verification on every call",
				Optional:            true,
			},
			"timeout": schema.Float64Attribute{
				MarkdownDescription: "Timeout in seconds applied to each HTTP call, defaults to 5",
				Optional:            true,
				Validators: []validator.Float64{
					float64validator.AtLeast(0),
				},
			},
			"extra_headers": schema.MapAttribute{
				MarkdownDescription: "Extra HTTP headers added to the entry and password calls",
				ElementType:         types.StringType,
				Optional:            true,
			},
			"force_no_cache": schema.BoolAttribute{
				MarkdownDescription: "Send `Cache-Control: no-cache` on the entry and password calls",
				Optional:            true,
			},
		},
	}
}

func (p *PleasantProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var config models.PleasantProviderModel
	diags := req.Config.Get(ctx, &config)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	if config.Host.IsUnknown() || config.Host.ValueString() == "" {
		resp.Diagnostics.AddAttributeError(
			path.Root("host"),
			"The host is required",
			"The provider needs the base URL of the Pleasant Password Server",
		)
	}

	if resp.Diagnostics.HasError() {
		return
	}

	data := models.PleasantProviderModel{
		Host:                 config.Host,
		Username:             config.Username,
		Password:             config.Password,
		CaBundlePath:         config.CaBundlePath,
		DisableTlsValidation: config.DisableTlsValidation,
		Timeout:              config.Timeout,
		ExtraHeaders:         config.ExtraHeaders,
		ForceNoCache:         config.ForceNoCache,
	}

	resp.DataSourceData = &data
	resp.ResourceData = &data
}

// DataSources defines the data sources implemented in the provider.
func (p *PleasantProvider) DataSources(_ context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		credential.NewCredentialDataSource,
		entries.NewEntriesDataSource,
	}
}

// Resources defines the resources implemented in the provider.
func (p *PleasantProvider) Resources(_ context.Context) []func() resource.Resource {
	return []func() resource.Resource{}
}

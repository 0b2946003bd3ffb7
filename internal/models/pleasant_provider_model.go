package models

import (
	"context"
	"time"

	"terraform-provider-pleasant/internal/apiclient"
	"terraform-provider-pleasant/internal/constants"

	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

type PleasantProviderModel struct {
	Host                 types.String  `tfsdk:"host"`
	Username             types.String  `tfsdk:"username"`
	Password             types.String  `tfsdk:"password"`
	CaBundlePath         types.String  `tfsdk:"ca_bundle_path"`
	DisableTlsValidation types.Bool    `tfsdk:"disable_tls_validation"`
	Timeout              types.Float64 `tfsdk:"timeout"`
	ExtraHeaders         types.Map     `tfsdk:"extra_headers"`
	ForceNoCache         types.Bool    `tfsdk:"force_no_cache"`
}

// HostConfig resolves the provider configuration into the settings used by
// the api client. Defaulting happens here, once, at the boundary.
func (m *PleasantProviderModel) HostConfig(ctx context.Context) (apiclient.HostConfig, diag.Diagnostics) {
	diagnostics := diag.Diagnostics{}

	timeout := constants.DefaultTimeout
	if !m.Timeout.IsNull() && !m.Timeout.IsUnknown() && m.Timeout.ValueFloat64() > 0 {
		timeout = time.Duration(m.Timeout.ValueFloat64() * float64(time.Second))
	}

	extraHeaders := map[string]string{}
	if !m.ExtraHeaders.IsNull() && !m.ExtraHeaders.IsUnknown() {
		diagnostics.Append(m.ExtraHeaders.ElementsAs(ctx, &extraHeaders, false)...)
	}

	config := apiclient.HostConfig{
		Host:                 m.Host.ValueString(),
		Username:             m.Username.ValueString(),
		Password:             m.Password.ValueString(),
		DisableTlsValidation: m.DisableTlsValidation.ValueBool(),
		CaBundlePath:         m.CaBundlePath.ValueString(),
		Timeout:              timeout,
		ExtraHeaders:         extraHeaders,
		ForceNoCache:         m.ForceNoCache.ValueBool(),
	}

	return config, diagnostics
}

package models

import (
	"context"
	"testing"
	"time"

	"github.com/hashicorp/terraform-plugin-framework/attr"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostConfig_Defaults(t *testing.T) {
	model := PleasantProviderModel{
		Host:                 types.StringValue("https://vault.example.com:10001"),
		Username:             types.StringValue("bob"),
		Password:             types.StringValue("hunter2"),
		CaBundlePath:         types.StringNull(),
		DisableTlsValidation: types.BoolNull(),
		Timeout:              types.Float64Null(),
		ExtraHeaders:         types.MapNull(types.StringType),
		ForceNoCache:         types.BoolNull(),
	}

	config, diags := model.HostConfig(context.Background())

	require.False(t, diags.HasError())
	assert.Equal(t, "https://vault.example.com:10001", config.Host)
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.False(t, config.DisableTlsValidation)
	assert.Empty(t, config.ExtraHeaders)
}

func TestHostConfig_TimeoutInSeconds(t *testing.T) {
	model := PleasantProviderModel{
		Host:         types.StringValue("https://vault.example.com:10001"),
		Timeout:      types.Float64Value(2.5),
		ExtraHeaders: types.MapNull(types.StringType),
	}

	config, diags := model.HostConfig(context.Background())

	require.False(t, diags.HasError())
	assert.Equal(t, 2500*time.Millisecond, config.Timeout)
}

func TestHostConfig_ZeroTimeoutFallsBackToDefault(t *testing.T) {
	model := PleasantProviderModel{
		Host:         types.StringValue("https://vault.example.com:10001"),
		Timeout:      types.Float64Value(0),
		ExtraHeaders: types.MapNull(types.StringType),
	}

	config, diags := model.HostConfig(context.Background())

	require.False(t, diags.HasError())
	assert.Equal(t, 5*time.Second, config.Timeout)
}

func TestHostConfig_ExtraHeaders(t *testing.T) {
	headers, diags := types.MapValue(types.StringType, map[string]attr.Value{
		"X-Custom": types.StringValue("value"),
	})
	require.False(t, diags.HasError())

	model := PleasantProviderModel{
		Host:         types.StringValue("https://vault.example.com:10001"),
		ExtraHeaders: headers,
		ForceNoCache: types.BoolValue(true),
	}

	config, modelDiags := model.HostConfig(context.Background())

	require.False(t, modelDiags.HasError())
	assert.Equal(t, map[string]string{"X-Custom": "value"}, config.ExtraHeaders)

	entryHeaders := config.EntryHeaders()
	assert.Equal(t, "value", entryHeaders["X-Custom"])
	assert.Equal(t, "no-cache", entryHeaders["Cache-Control"])
}

func TestHostConfig_TlsPolicy(t *testing.T) {
	model := PleasantProviderModel{
		Host:                 types.StringValue("https://vault.example.com:10001"),
		CaBundlePath:         types.StringValue("/etc/ssl/certs/ca-bundle.crt"),
		DisableTlsValidation: types.BoolNull(),
		ExtraHeaders:         types.MapNull(types.StringType),
	}

	config, diags := model.HostConfig(context.Background())

	require.False(t, diags.HasError())
	policy := config.TlsPolicy()
	assert.Equal(t, "/etc/ssl/certs/ca-bundle.crt", policy.CaBundlePath)
	assert.False(t, policy.DisableVerification)
}

package apiclient

import (
	"time"

	"terraform-provider-pleasant/internal/helpers"
	"terraform-provider-pleasant/internal/schemas/authenticator"
)

// HostConfig carries the connection settings for one workflow. It is
// resolved once at the provider boundary and stays constant for every call
// of the workflow.
type HostConfig struct {
	Host                 string                        `json:"host"`
	Username             string                        `json:"username"`
	Password             string                        `json:"password"`
	DisableTlsValidation bool                          `json:"disable_tls_validation"`
	CaBundlePath         string                        `json:"ca_bundle_path"`
	Timeout              time.Duration                 `json:"timeout"`
	ExtraHeaders         map[string]string             `json:"extra_headers"`
	ForceNoCache         bool                          `json:"force_no_cache"`
	Authorization        *authenticator.Authentication `json:"authorization"`
}

func (c HostConfig) TlsPolicy() helpers.TlsPolicy {
	return helpers.TlsPolicy{
		DisableVerification: c.DisableTlsValidation,
		CaBundlePath:        c.CaBundlePath,
	}
}

// EntryHeaders is the header set for the entry and secret calls: the caller
// supplied extras plus the no-cache marker when requested.
func (c HostConfig) EntryHeaders() map[string]string {
	headers := make(map[string]string, len(c.ExtraHeaders)+1)
	for k, v := range c.ExtraHeaders {
		headers[k] = v
	}
	if c.ForceNoCache {
		headers["Cache-Control"] = "no-cache"
	}
	return headers
}

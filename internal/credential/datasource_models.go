package credential

import (
	"terraform-provider-pleasant/internal/schemas/authenticator"

	"github.com/hashicorp/terraform-plugin-framework-timeouts/datasource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// credentialDataSourceModel represents the data source schema for the
// credential data source.
type credentialDataSourceModel struct {
	EntryId       types.String                  `tfsdk:"entry_id"`
	Authenticator *authenticator.Authentication `tfsdk:"authenticator"`
	Timeouts      timeouts.Value                `tfsdk:"timeouts"`
	Credentials   []credentialModel             `tfsdk:"credentials"`
}

// credentialModel is one resolved credential.
type credentialModel struct {
	Username types.String `tfsdk:"username"`
	Password types.String `tfsdk:"password"`
}

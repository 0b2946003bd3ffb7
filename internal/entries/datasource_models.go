package entries

import (
	"terraform-provider-pleasant/internal/schemas/authenticator"
	"terraform-provider-pleasant/internal/schemas/filter"

	"github.com/hashicorp/terraform-plugin-framework-timeouts/datasource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// entriesDataSourceModel represents the data source schema for the entries
// data source.
type entriesDataSourceModel struct {
	Search        types.String                  `tfsdk:"search"`
	Authenticator *authenticator.Authentication `tfsdk:"authenticator"`
	Filter        *filter.Filter                `tfsdk:"filter"`
	Timeouts      timeouts.Value                `tfsdk:"timeouts"`
	Entries       []entryModel                  `tfsdk:"entries"`
}

// entryModel is one search hit.
type entryModel struct {
	Id       types.String `tfsdk:"id"`
	Name     types.String `tfsdk:"name"`
	Username types.String `tfsdk:"username"`
	Password types.String `tfsdk:"password"`
	Path     types.String `tfsdk:"path"`
}

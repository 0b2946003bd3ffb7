package filter

import (
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
)

var SchemaName = "filter"

var SchemaBlock = schema.SingleNestedBlock{
	MarkdownDescription: "Filter block, this is used to narrow the search results",

	Attributes: map[string]schema.Attribute{
		"path": schema.StringAttribute{
			MarkdownDescription: "Keep only entries whose folder path starts with this value, e.g. `Root/DEV/`.",
			Optional:            true,
		},
		"username": schema.StringAttribute{
			MarkdownDescription: "Keep only entries with exactly this username.",
			Optional:            true,
		},
	},
}

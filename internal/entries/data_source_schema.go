package entries

import (
	"context"

	"terraform-provider-pleasant/internal/schemas/authenticator"
	"terraform-provider-pleasant/internal/schemas/filter"

	"github.com/hashicorp/terraform-plugin-framework-timeouts/datasource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

func entriesDataSourceSchema(ctx context.Context) schema.Schema {
	return schema.Schema{
		MarkdownDescription: "Searches the Pleasant Password Server by text and resolves the matching credentials",
		Blocks: map[string]schema.Block{
			authenticator.SchemaName: authenticator.SchemaBlock,
			filter.SchemaName:        filter.SchemaBlock,
		},
		Attributes: map[string]schema.Attribute{
			"search": schema.StringAttribute{
				MarkdownDescription: "Text to search for, e.g. an entry name",
				Required:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"timeouts": timeouts.Attributes(ctx),
			"entries": schema.ListNestedAttribute{
				MarkdownDescription: "The matching entries with their passwords resolved",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"id": schema.StringAttribute{
							Computed: true,
						},
						"name": schema.StringAttribute{
							Computed: true,
						},
						"username": schema.StringAttribute{
							Computed: true,
						},
						"password": schema.StringAttribute{
							Computed:  true,
							Sensitive: true,
						},
						"path": schema.StringAttribute{
							Computed: true,
						},
					},
				},
			},
		},
	}
}

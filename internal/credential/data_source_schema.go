package credential

import (
	"context"

	"terraform-provider-pleasant/internal/schemas/authenticator"

	"github.com/hashicorp/terraform-plugin-framework-timeouts/datasource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
)

func credentialDataSourceSchema(ctx context.Context) schema.Schema {
	return schema.Schema{
		MarkdownDescription: "Looks up one credential in the Pleasant Password Server by entry id",
		Blocks: map[string]schema.Block{
			authenticator.SchemaName: authenticator.SchemaBlock,
		},
		Attributes: map[string]schema.Attribute{
			"entry_id": schema.StringAttribute{
				MarkdownDescription: "GUID of the vault entry to retrieve",
				Required:            true,
			},
			"timeouts": timeouts.Attributes(ctx),
			"credentials": schema.ListNestedAttribute{
				MarkdownDescription: "The resolved credential, always a single element on success",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"username": schema.StringAttribute{
							Computed: true,
						},
						"password": schema.StringAttribute{
							Computed:  true,
							Sensitive: true,
						},
					},
				},
			},
		},
	}
}

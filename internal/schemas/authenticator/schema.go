package authenticator

import (
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

var SchemaName = "authenticator"

var SchemaBlock = schema.SingleNestedBlock{
	MarkdownDescription: "Authenticator block, overrides the provider credentials for this data source",

	Attributes: map[string]schema.Attribute{
		"username": schema.StringAttribute{
			MarkdownDescription: "Username to authenticate to the Pleasant server",
			Optional:            true,
			Validators: []validator.String{
				stringvalidator.AlsoRequires(path.Expressions{
					path.MatchRelative().AtParent().AtName("password"),
				}...),
			},
		},
		"password": schema.StringAttribute{
			MarkdownDescription: "Password to authenticate to the Pleasant server",
			Optional:            true,
			Sensitive:           true,
			Validators: []validator.String{
				stringvalidator.AlsoRequires(path.Expressions{
					path.MatchRelative().AtParent().AtName("username"),
				}...),
			},
		},
	},
}

package authenticator

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Authentication overrides the provider-level credentials on a single data
// source.
type Authentication struct {
	Username types.String `tfsdk:"username"`
	Password types.String `tfsdk:"password"`
}

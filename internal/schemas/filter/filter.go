package filter

import (
	"strings"

	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Filter narrows search results on the entry path and username.
type Filter struct {
	Path     types.String `tfsdk:"path"`
	Username types.String `tfsdk:"username"`
}

// Matches reports whether an entry with the given path and username passes
// the filter. The path filter is a prefix match, the username filter an exact
// match. A nil filter passes everything.
func (s *Filter) Matches(path, username string) bool {
	if s == nil {
		return true
	}

	if s.Path.ValueString() != "" && !strings.HasPrefix(path, s.Path.ValueString()) {
		return false
	}

	if s.Username.ValueString() != "" && username != s.Username.ValueString() {
		return false
	}

	return true
}

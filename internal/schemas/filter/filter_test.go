package filter

import (
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Matches(t *testing.T) {
	tests := []struct {
		name     string
		filter   *Filter
		path     string
		username string
		expected bool
	}{
		{"nil filter passes everything", nil, "Root/DEV/", "root", true},
		{
			"empty filter passes everything",
			&Filter{Path: types.StringNull(), Username: types.StringNull()},
			"Root/DEV/", "root", true,
		},
		{
			"path prefix match",
			&Filter{Path: types.StringValue("Root/DEV/"), Username: types.StringNull()},
			"Root/DEV/db/", "root", true,
		},
		{
			"path prefix mismatch",
			&Filter{Path: types.StringValue("Root/PROD/"), Username: types.StringNull()},
			"Root/DEV/", "root", false,
		},
		{
			"username exact match",
			&Filter{Path: types.StringNull(), Username: types.StringValue("root")},
			"Root/DEV/", "root", true,
		},
		{
			"username partial is no match",
			&Filter{Path: types.StringNull(), Username: types.StringValue("roo")},
			"Root/DEV/", "root", false,
		},
		{
			"both must match",
			&Filter{Path: types.StringValue("Root/DEV/"), Username: types.StringValue("admin")},
			"Root/DEV/", "root", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Matches(tt.path, tt.username))
		})
	}
}

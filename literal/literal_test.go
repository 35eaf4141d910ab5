package literal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenbone-community/notus-metadata-loader/literal"
)

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr string
	}{
		{
			name:  "single quoted elements",
			input: "['CVE-2021-3156', 'CVE-2021-23240']",
			want:  []string{"CVE-2021-3156", "CVE-2021-23240"},
		},
		{
			name:  "double quoted elements",
			input: `["sudo", "sudo-ldap"]`,
			want:  []string{"sudo", "sudo-ldap"},
		},
		{
			name:  "empty list",
			input: "[]",
			want:  []string{},
		},
		{
			name:  "trailing comma",
			input: "['a', 'b',]",
			want:  []string{"a", "b"},
		},
		{
			name:  "escaped quote",
			input: `['it\'s broken']`,
			want:  []string{"it's broken"},
		},
		{
			name:    "not a list",
			input:   "not-a-list",
			wantErr: `expected "["`,
		},
		{
			name:    "unquoted element",
			input:   "[abc]",
			wantErr: "expected quoted string",
		},
		{
			name:    "unterminated",
			input:   "['a'",
			wantErr: "expected ',' or ']'",
		},
		{
			name:    "trailing garbage",
			input:   "['a'] extra",
			wantErr: "trailing data",
		},
		{
			name:    "nested list rejected",
			input:   "[['a']]",
			wantErr: "expected quoted string",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := literal.ParseStringList(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStringMap(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]string
		wantErr string
	}{
		{
			name:  "single entry",
			input: "{'Debian Local Security Checks': '1.3.6.1.4.1.25623.1.0.50000'}",
			want:  map[string]string{"Debian Local Security Checks": "1.3.6.1.4.1.25623.1.0.50000"},
		},
		{
			name: "general metadata",
			input: `{'VULDETECT': 'Checks if a vulnerable package version is present on the target host.', ` +
				`'SOLUTION': 'Please install the updated package(s).', 'SOLUTION_TYPE': 'VendorFix', 'QOD_TYPE': 'package'}`,
			want: map[string]string{
				"VULDETECT":     "Checks if a vulnerable package version is present on the target host.",
				"SOLUTION":      "Please install the updated package(s).",
				"SOLUTION_TYPE": "VendorFix",
				"QOD_TYPE":      "package",
			},
		},
		{
			name:  "empty map",
			input: "{}",
			want:  map[string]string{},
		},
		{
			name:    "missing colon",
			input:   "{'a' 'b'}",
			wantErr: `expected ":"`,
		},
		{
			name:    "unquoted value",
			input:   "{'a': 1}",
			wantErr: "expected quoted string",
		},
		{
			name:    "not a map",
			input:   "['a']",
			wantErr: `expected "{"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := literal.ParseStringMap(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

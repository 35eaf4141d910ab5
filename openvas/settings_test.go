package openvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSettingsOutput(t *testing.T) {
	out := []byte(`plugins_folder = /var/lib/openvas/plugins
nasl_no_signature_check = yes
table_driven_lsc = no
malformed line without separator
 = value without key
max_hosts = 30
`)
	settings := parseSettingsOutput(out)

	folder, ok := settings.String("plugins_folder")
	assert.True(t, ok)
	assert.Equal(t, "/var/lib/openvas/plugins", folder)

	assert.True(t, settings.Bool("nasl_no_signature_check"))
	assert.False(t, settings.Bool("table_driven_lsc"))
	assert.False(t, settings.Bool("unknown_option"))

	_, ok = settings.String("malformed line without separator")
	assert.False(t, ok)

	hosts, ok := settings.String("max_hosts")
	assert.True(t, ok)
	assert.Equal(t, "30", hosts)
}

func TestStaticSettingsBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"yes", true},
		{"true", true},
		{"1", true},
		{"no", false},
		{"false", false},
		{"0", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			s := StaticSettings{"opt": tt.value}
			assert.Equal(t, tt.want, s.Bool("opt"))
		})
	}
}

package notus

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenbone-community/notus-metadata-loader/kb"
	"github.com/greenbone-community/notus-metadata-loader/openvas"
)

func TestHandler_ChecksumOK(t *testing.T) {
	content := []byte("link = {'Debian Local Security Checks': '1.3.6.1.4.1.25623.1.0.50000'}\n")
	digest := sha256.Sum256(content)

	tests := []struct {
		name     string
		content  []byte
		recorded string
		settings openvas.StaticSettings
		want     bool
	}{
		{
			name:     "matching digest",
			content:  content,
			recorded: hex.EncodeToString(digest[:]),
			settings: openvas.StaticSettings{"nasl_no_signature_check": "no"},
			want:     true,
		},
		{
			name:     "single byte mutation",
			content:  append([]byte("X"), content[1:]...),
			recorded: hex.EncodeToString(digest[:]),
			settings: openvas.StaticSettings{"nasl_no_signature_check": "no"},
			want:     false,
		},
		{
			name:     "no recorded digest",
			content:  content,
			recorded: "",
			settings: openvas.StaticSettings{"nasl_no_signature_check": "no"},
			want:     false,
		},
		{
			name:     "check disabled",
			content:  content,
			recorded: "",
			settings: openvas.StaticSettings{"nasl_no_signature_check": "yes"},
			want:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appFs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(appFs, "/feed/debian.csv", tt.content, 0644))

			store := kb.NewMemory()
			if tt.recorded != "" {
				store.SetFileChecksum("/feed/debian.csv", tt.recorded)
			}

			h := NewHandler(store, tt.settings, WithAppFs(appFs), WithMetadataDir("/feed"))
			assert.Equal(t, tt.want, h.checksumOK("/feed/debian.csv"))
		})
	}
}

func TestHandler_ChecksumOKMissingFile(t *testing.T) {
	h := NewHandler(kb.NewMemory(),
		openvas.StaticSettings{"nasl_no_signature_check": "no"},
		WithAppFs(afero.NewMemMapFs()), WithMetadataDir("/feed"))
	assert.False(t, h.checksumOK("/feed/absent.csv"))
}

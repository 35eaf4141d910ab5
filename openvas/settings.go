// Package openvas exposes the scanner configuration the loader depends on:
// the plugins folder, whether signature checking is disabled and whether
// table-driven LSC loading is enabled at all.
package openvas

import (
	"bufio"
	"bytes"
	"os/exec"
	"strings"

	"golang.org/x/xerrors"
)

// Settings is a read-only view of named scanner options.
type Settings interface {
	// Bool reports the option as a boolean. Unset options are false.
	Bool(key string) bool

	// String returns the option value and whether it is set.
	String(key string) (string, bool)
}

// StaticSettings is a fixed map of options, used in tests and by callers
// that already hold a parsed configuration.
type StaticSettings map[string]string

func (s StaticSettings) Bool(key string) bool {
	return parseBool(s[key])
}

func (s StaticSettings) String(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// ScannerSettings reads options from the openvas binary itself.
type ScannerSettings struct {
	settings StaticSettings
}

// LoadScannerSettings runs `openvas -s` and parses its `key = value`
// output.
func LoadScannerSettings() (*ScannerSettings, error) {
	out, err := exec.Command("openvas", "-s").Output()
	if err != nil {
		return nil, xerrors.Errorf("failed to read openvas settings: %w", err)
	}
	return &ScannerSettings{settings: parseSettingsOutput(out)}, nil
}

func (s *ScannerSettings) Bool(key string) bool {
	return s.settings.Bool(key)
}

func (s *ScannerSettings) String(key string) (string, bool) {
	return s.settings.String(key)
}

func parseSettingsOutput(out []byte) StaticSettings {
	settings := StaticSettings{}
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		settings[key] = strings.TrimSpace(value)
	}
	return settings
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "yes", "true", "1":
		return true
	}
	return false
}

package config

import (
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ConfigFilenames are the files probed during discovery, in priority
// order. The first one that exists wins.
var ConfigFilenames = []string{"tarpaulin.toml", ".tarpaulin.toml"}

// CheckForConfigs looks for a config file near the profile: in its
// root when set, otherwise next to its manifest. The probe has no side
// effects beyond existence checks.
func (p *Profile) CheckForConfigs(fsys afero.Fs) (string, bool) {
	if p.Root != "" {
		return checkPathForConfigs(fsys, p.Root)
	}
	return checkPathForConfigs(fsys, filepath.Dir(p.Manifest))
}

func checkPathForConfigs(fsys afero.Fs, dir string) (string, bool) {
	for _, name := range ConfigFilenames {
		candidate := filepath.Join(dir, name)
		if ok, err := afero.Exists(fsys, candidate); err == nil && ok {
			return candidate, true
		}
	}
	return "", false
}

// LoadFile reads a config file and parses its profiles, stamping each
// one with the path it was loaded from.
func LoadFile(fsys afero.Fs, path string) ([]*Profile, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	profiles, err := ParseProfiles(data)
	if err != nil {
		log.Errorf("invalid config file %s: %v", path, err)
		return nil, err
	}

	for _, p := range profiles {
		p.ConfigPath = path
	}
	return profiles, nil
}

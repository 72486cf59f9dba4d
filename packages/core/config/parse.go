package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrNoTables marks a config file with zero profile tables. An empty
// document is invalid, not "no configuration".
var ErrNoTables = errors.New("no profile tables in config")

// ParseProfiles deserializes a TOML document whose top level is a
// mapping of profile name to settings table. Every profile starts from
// Default and takes its name from its table key; a `name` key inside a
// table is ignored. Profiles are returned in the order their tables
// appear in the document.
func ParseProfiles(data []byte) ([]*Profile, error) {
	var tables map[string]toml.Primitive
	md, err := toml.Decode(string(data), &tables)
	if err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	var profiles []*Profile
	for _, key := range md.Keys() {
		// Top-level table keys only; nested keys have longer paths.
		if len(key) != 1 {
			continue
		}
		name := key[0]
		prim, ok := tables[name]
		if !ok {
			continue
		}

		p := Default()
		if err := md.PrimitiveDecode(prim, p); err != nil {
			return nil, fmt.Errorf("invalid profile %q: %w", name, err)
		}
		p.Name = name
		p.All = p.All || p.Workspace
		profiles = append(profiles, p)
	}

	if len(profiles) == 0 {
		return nil, ErrNoTables
	}
	return profiles, nil
}

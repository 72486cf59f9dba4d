package config

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Resolve turns a parsed argument set into the final profile set.
//
// The args always produce one profile. When a config file is forced or
// discoverable it is loaded and its profiles each receive the args
// overlay; any failure along the way falls back to the args-only set.
// The one hard failure is an explicitly-supplied config path that
// cannot be canonicalized, since the user pointed straight at it.
func Resolve(fsys afero.Fs, args *Args) (ProfileSet, error) {
	log.Info("creating run profiles")

	backup, err := args.Profile()
	if err != nil {
		return nil, err
	}

	switch {
	case args.IgnoreConfig:
		return ProfileSet{backup}, nil

	case args.ConfigPath != "":
		path := args.ConfigPath
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			path, err = filepath.EvalSymlinks(filepath.Join(cwd, path))
			if err != nil {
				return nil, fmt.Errorf("resolve config path %s: %w", args.ConfigPath, err)
			}
		}
		profiles, err := LoadFile(fsys, path)
		return NewProfileSet(profiles, err, backup), nil

	default:
		if path, ok := backup.CheckForConfigs(fsys); ok {
			profiles, err := LoadFile(fsys, path)
			return NewProfileSet(profiles, err, backup), nil
		}
		return ProfileSet{backup}, nil
	}
}

// NewProfileSet overlays the args-derived backup onto every file
// profile, falling back to the backup alone when loading failed or
// produced nothing. The result is never empty.
func NewProfileSet(fileProfiles []*Profile, err error, backup *Profile) ProfileSet {
	if err != nil {
		log.Warnf("failed to deserialize config file, falling back to provided args: %v", err)
		return ProfileSet{backup}
	}

	for _, p := range fileProfiles {
		p.Merge(backup)
	}
	if len(fileProfiles) == 0 {
		return ProfileSet{backup}
	}
	return ProfileSet(fileProfiles)
}

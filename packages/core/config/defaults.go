package config

import "time"

// DefaultTimeout is how long a test binary may run before the run is
// considered hung.
const DefaultTimeout = 60 * time.Second

// DefaultManifest is the cargo manifest assumed when none is given.
const DefaultManifest = "Cargo.toml"

// Default returns a profile with the documented default values: line
// coverage on, plain test runs, a 60 second timeout and everything
// else off or empty. File-derived profiles start from these defaults
// before their table keys are applied.
func Default() *Profile {
	return &Profile{
		Manifest:     DefaultManifest,
		LineCoverage: true,
		TestTimeout:  Duration(DefaultTimeout),
		RunTypes:     []RunType{RunTests},
	}
}

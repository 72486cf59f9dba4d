// Package config resolves run profiles for tarpgo.
//
// A resolution combines two sources of truth:
//   - the parsed command-line invocation (Args)
//   - an optional tarpaulin.toml settings file holding named profiles
//
// Resolve builds the args-derived profile, discovers or loads the
// settings file, and overlays the command-line values onto every
// file-derived profile, producing a non-empty ProfileSet. Command-line
// args always form a safe fallback when the file is missing or invalid.
package config

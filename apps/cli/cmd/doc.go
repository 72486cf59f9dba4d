// Package cmd implements the tarpgo CLI commands using Cobra.
//
// Available commands:
//   - run: Resolve run profiles and collect coverage via cargo
//   - config: Show the fully-resolved profiles without running anything
//   - version: Show tarpgo version information
//
// Every profile setting has a matching flag; a tarpaulin.toml file near
// the project provides named profiles, and command-line values overlay
// each of them.
package cmd

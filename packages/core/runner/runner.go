package runner

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/abdul-hamid-achik/tarpgo/packages/core/config"
)

// CargoArgs builds the cargo argument vector for a profile. The result
// is deterministic for a given profile, so it can be inspected without
// executing anything.
func CargoArgs(p *config.Profile) []string {
	args := []string{"test"}

	if p.NoRun {
		args = append(args, "--no-run")
	}
	if p.Manifest != "" {
		args = append(args, "--manifest-path", p.Manifest)
	}
	if p.Release {
		args = append(args, "--release")
	}
	if p.All {
		args = append(args, "--workspace")
	}
	if p.AllFeatures {
		args = append(args, "--all-features")
	}
	if p.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	if len(p.Features) > 0 {
		args = append(args, "--features", strings.Join(p.Features, " "))
	}
	for _, pkg := range p.Packages {
		args = append(args, "--package", pkg)
	}
	for _, pkg := range p.ExcludePackages {
		args = append(args, "--exclude", pkg)
	}
	if p.Locked {
		args = append(args, "--locked")
	}
	if p.Frozen {
		args = append(args, "--frozen")
	}
	if p.Offline {
		args = append(args, "--offline")
	}
	if p.TargetDir != "" {
		args = append(args, "--target-dir", p.TargetDir)
	}
	for _, z := range p.UnstableFeatures {
		args = append(args, "-Z", z)
	}

	trailing := append([]string(nil), p.Varargs...)
	if p.RunIgnored {
		trailing = append(trailing, "--ignored")
	}
	if len(trailing) > 0 {
		args = append(args, "--")
		args = append(args, trailing...)
	}

	return args
}

// Run executes the profile's test suite via cargo, bounded by the
// profile timeout. Output streams straight through to the user.
func Run(ctx context.Context, p *config.Profile) error {
	if p.TestTimeout.Std() > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.TestTimeout.Std())
		defer cancel()
	}

	if p.ForceClean {
		clean := exec.CommandContext(ctx, "cargo", "clean", "--manifest-path", p.Manifest)
		clean.Stdout = os.Stdout
		clean.Stderr = os.Stderr
		if err := clean.Run(); err != nil {
			return err
		}
	}

	args := CargoArgs(p)
	log.Debugf("running cargo %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "cargo", args...)
	cmd.Dir = filepath.Dir(p.Manifest)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	return cmd.Run()
}

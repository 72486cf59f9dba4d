package runner

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/abdul-hamid-achik/tarpgo/packages/core/config"
)

// Plan partitions a project's Rust sources by a profile's exclusion
// rules. Paths are relative to the profile base directory.
type Plan struct {
	Profile  *config.Profile
	Included []string
	Excluded []string
}

// BuildPlan walks the profile base directory for .rs sources and sorts
// them into included and excluded sets. Build artifacts and VCS
// metadata are skipped.
func BuildPlan(fsys afero.Fs, p *config.Profile) (*Plan, error) {
	base := p.BaseDir()
	plan := &Plan{Profile: p}

	err := afero.Walk(fsys, base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			switch info.Name() {
			case "target", ".git":
				if path != base {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if filepath.Ext(path) != ".rs" {
			return nil
		}

		rel := p.StripBaseDir(path)
		if p.ExcludePath(path) {
			plan.Excluded = append(plan.Excluded, rel)
		} else {
			plan.Included = append(plan.Included, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(plan.Included)
	sort.Strings(plan.Excluded)
	return plan, nil
}

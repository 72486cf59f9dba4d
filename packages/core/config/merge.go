package config

// Merge overlays the args-derived profile other onto a file-derived
// profile. The overlay is one-directional and field-selective:
//
//   - debug and verbose only propagate forward when set; a false value
//     in other never clears a true value already present.
//   - manifest and root always take other's values, since the config
//     file was found starting from the invocation's location.
//   - exclusion patterns from other are appended, and the compiled
//     matcher cache is invalidated so the next query recompiles the
//     combined set.
//
// Every other field is a deliberate per-profile declaration and is
// left untouched.
func (p *Profile) Merge(other *Profile) {
	if other.Debug {
		p.Debug = true
		p.Verbose = other.Verbose
	} else if other.Verbose {
		p.Verbose = true
	}

	p.Manifest = other.Manifest
	p.Root = other.Root

	if len(other.ExcludedFilesRaw) > 0 {
		p.ExcludedFilesRaw = append(p.ExcludedFilesRaw, other.ExcludedFilesRaw...)
		p.excludedFiles = nil
	}
}

// SPDX-License-Identifier: MPL-2.0

package launch

// Resolver produces launch descriptors for one adapter installation.
// A Resolver holds no mutable state and is safe for concurrent use.
type Resolver struct {
	// Executable is the adapter path. It is a deployment constant and is not
	// checked for existence.
	Executable string
	// FullContext selects full-context mode; false selects minimal mode.
	FullContext bool
}

// NewResolver returns a Resolver for the given executable and mode.
// An unrecognized mode falls back to full-context.
func NewResolver(executable string, mode Mode) Resolver {
	return Resolver{
		Executable:  executable,
		FullContext: mode != ModeMinimal,
	}
}

// Mode returns the launch mode this resolver is deployed with.
func (r Resolver) Mode() Mode {
	if r.FullContext {
		return ModeFullContext
	}
	return ModeMinimal
}

// Resolve validates cfg and assembles its descriptor. The only failure is a
// *MissingProgramError, in which case the descriptor is nil.
func (r Resolver) Resolve(cfg SessionConfig, host HostContext) (*Descriptor, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	mode := r.Mode()
	d := &Descriptor{
		Mode:       mode,
		Executable: r.Executable,
		Args:       []string{mode.Flag(), cfg.program},
	}

	if r.FullContext {
		d.Env = MergeEnv(cfg, host)
		d.Dir = ResolveWorkDir(cfg, host)
	}

	return d, nil
}

// IgnoredOverrides lists the configuration keys a minimal-mode resolver drops.
// It is empty in full-context mode.
func (r Resolver) IgnoredOverrides(cfg SessionConfig) []string {
	if r.FullContext {
		return nil
	}
	var keys []string
	if cfg.cwd != "" {
		keys = append(keys, KeyCwd)
	}
	if cfg.env != nil {
		keys = append(keys, KeyEnv)
	}
	return keys
}

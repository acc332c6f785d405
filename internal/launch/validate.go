// SPDX-License-Identifier: MPL-2.0

package launch

// validate checks the single hard requirement: a non-empty program.
func validate(cfg SessionConfig) error {
	if cfg.program == "" {
		return &MissingProgramError{Name: cfg.name}
	}
	return nil
}

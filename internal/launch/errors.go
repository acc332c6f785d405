// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"fmt"
)

// ErrMissingProgram is the sentinel error wrapped by MissingProgramError.
var ErrMissingProgram = errors.New("missing program")

// MissingProgramError is returned when a session configuration has no usable
// program value. No descriptor accompanies it.
type MissingProgramError struct {
	// Name is the configuration's display name, if it had one.
	Name string
}

// Error implements the error interface for MissingProgramError.
func (e *MissingProgramError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("no program specified in launch configuration %q", e.Name)
	}
	return "no program specified in launch configuration"
}

// Unwrap returns ErrMissingProgram for errors.Is() compatibility.
func (e *MissingProgramError) Unwrap() error { return ErrMissingProgram }

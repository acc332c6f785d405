// SPDX-License-Identifier: MPL-2.0

package launch

// ResolveWorkDir returns the working directory for the adapter process:
//  1. the configuration's cwd, when non-empty
//  2. the first workspace folder, when any are open
//  3. "" otherwise, meaning the process inherits the host's directory
func ResolveWorkDir(cfg SessionConfig, host HostContext) string {
	if cfg.cwd != "" {
		return cfg.cwd
	}
	if len(host.WorkspaceFolders) > 0 {
		return host.WorkspaceFolders[0]
	}
	return ""
}

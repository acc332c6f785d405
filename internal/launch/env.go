// SPDX-License-Identifier: MPL-2.0

package launch

import "maps"

// MergeEnv overlays the configuration's env onto a copy of the host
// environment. Overlay values win on collision. Neither input is modified and
// the result is never nil.
func MergeEnv(cfg SessionConfig, host HostContext) map[string]string {
	env := make(map[string]string, len(host.Env)+len(cfg.env))
	maps.Copy(env, host.Env)
	maps.Copy(env, cfg.env)
	return env
}

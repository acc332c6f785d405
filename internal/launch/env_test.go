// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"maps"
	"testing"
)

func TestMergeEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		hostEnv map[string]string
		overlay map[string]string
		want    map[string]string
	}{
		{
			name:    "no overlay copies host",
			hostEnv: map[string]string{"A": "1", "B": "2"},
			want:    map[string]string{"A": "1", "B": "2"},
		},
		{
			name:    "overlay wins on collision",
			hostEnv: map[string]string{"A": "1", "B": "2"},
			overlay: map[string]string{"B": "override", "C": "3"},
			want:    map[string]string{"A": "1", "B": "override", "C": "3"},
		},
		{
			name:    "empty overlay value still wins",
			hostEnv: map[string]string{"A": "1"},
			overlay: map[string]string{"A": ""},
			want:    map[string]string{"A": ""},
		},
		{
			name:    "nil host env",
			overlay: map[string]string{"A": "1"},
			want:    map[string]string{"A": "1"},
		},
		{
			name: "both empty",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hostCopy := maps.Clone(tt.hostEnv)
			got := MergeEnv(NewSessionConfig("/p", "", tt.overlay), HostContext{Env: tt.hostEnv})

			if got == nil {
				t.Fatal("MergeEnv() returned nil")
			}
			if !maps.Equal(got, tt.want) {
				t.Errorf("MergeEnv() = %v, want %v", got, tt.want)
			}
			if !maps.Equal(tt.hostEnv, hostCopy) {
				t.Errorf("MergeEnv() modified host env: %v, was %v", tt.hostEnv, hostCopy)
			}
		})
	}
}

func TestMergeEnv_FlatOverlay(t *testing.T) {
	t.Parallel()

	// Structured values are stringified when parsed, never merged recursively.
	cfg := ParseSessionConfig(map[string]any{
		"program": "/p",
		"env":     map[string]any{"PORT": 8080, "DEBUG": true},
	})
	got := MergeEnv(cfg, HostContext{Env: map[string]string{"PORT": "80"}})

	want := map[string]string{"PORT": "8080", "DEBUG": "true"}
	if !maps.Equal(got, want) {
		t.Errorf("MergeEnv() = %v, want %v", got, want)
	}
}

package version

import (
	"testing"
)

func saveAndRestore() func() {
	v, c, b := Version, GitCommit, BuildTime
	return func() {
		Version, GitCommit, BuildTime = v, c, b
	}
}

func TestGetUsesLinkerValues(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abcdef0123456"
	BuildTime = "2026-01-02T03:04:05Z"

	info := Get()
	if info.Version != "1.2.0" {
		t.Errorf("Version = %q", info.Version)
	}
	if info.GitCommit != "abcdef0" {
		t.Errorf("GitCommit = %q, want shortened", info.GitCommit)
	}
	if info.BuildTime != "2026-01-02T03:04:05Z" {
		t.Errorf("BuildTime = %q", info.BuildTime)
	}
}

func TestInfoIsRelease(t *testing.T) {
	tests := []struct {
		info Info
		want bool
	}{
		{Info{Version: "dev"}, false},
		{Info{Version: "1.0.0"}, true},
		{Info{Version: "1.0.0-dirty"}, false},
		{Info{Version: "1.0.0", Dirty: true}, false},
	}
	for _, tt := range tests {
		if got := tt.info.IsRelease(); got != tt.want {
			t.Errorf("%+v.IsRelease() = %v, want %v", tt.info, got, tt.want)
		}
	}
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"bare", Info{Version: "dev"}, "dev"},
		{"commit", Info{Version: "1.0.0", GitCommit: "abc1234"}, "1.0.0 (abc1234)"},
		{"dirty", Info{Version: "1.0.0", GitCommit: "abc1234", Dirty: true}, "1.0.0 (abc1234-dirty)"},
		{"full", Info{Version: "1.0.0", GitCommit: "abc1234", BuildTime: "2026-01-02T03:04:05Z"}, "1.0.0 (abc1234, built 2026-01-02T03:04:05Z)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

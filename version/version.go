package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set with -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info is the resolved build version.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	BuildTime string `json:"build_time,omitempty" yaml:"build_time,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Dirty     bool   `json:"dirty,omitempty" yaml:"dirty,omitempty"`
}

// Get resolves the build version.
func Get() Info {
	info := Info{Version: Version, GitCommit: GitCommit, BuildTime: BuildTime}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	if len(info.GitCommit) > 7 {
		info.GitCommit = info.GitCommit[:7]
	}
	return info
}

// IsRelease reports whether the version is a tagged clean build.
func (i Info) IsRelease() bool {
	return i.Version != "dev" && !i.Dirty && !strings.Contains(i.Version, "dirty")
}

// String formats the version as "1.2.0 (abc1234, built 2026-01-02T03:04:05Z)".
func (i Info) String() string {
	var extra []string
	if i.GitCommit != "" {
		c := i.GitCommit
		if i.Dirty {
			c += "-dirty"
		}
		extra = append(extra, c)
	}
	if i.BuildTime != "" {
		extra = append(extra, "built "+i.BuildTime)
	}
	if len(extra) == 0 {
		return i.Version
	}
	return fmt.Sprintf("%s (%s)", i.Version, strings.Join(extra, ", "))
}

package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/kbukum/xduce/version.Version=1.2.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
	Modified  bool   `json:"modified,omitempty"`
}

// Get returns the version stamped at build time, filling gaps from the VCS
// information the Go toolchain embeds.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, BuildTime: BuildTime}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	return fromSettings(info, bi.Settings)
}

func fromSettings(info Info, settings []debug.BuildSetting) Info {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	if len(info.Commit) > 7 {
		info.Commit = info.Commit[:7]
	}
	return info
}

// IsRelease reports whether the binary was built from a tagged, clean tree.
func (i Info) IsRelease() bool {
	return i.Version != "dev" && !i.Modified && !strings.Contains(i.Version, "dirty")
}

// String renders the version on one line, e.g. "1.2.0 (abc1234-dirty, go1.26.0)".
func (i Info) String() string {
	var meta []string
	if i.Commit != "" {
		c := i.Commit
		if i.Modified {
			c += "-dirty"
		}
		meta = append(meta, c)
	}
	if i.GoVersion != "" {
		meta = append(meta, i.GoVersion)
	}
	if len(meta) == 0 {
		return i.Version
	}
	return fmt.Sprintf("%s (%s)", i.Version, strings.Join(meta, ", "))
}

// Fields returns the version as structured log fields.
func (i Info) Fields() map[string]interface{} {
	f := map[string]interface{}{"version": i.Version}
	if i.Commit != "" {
		f["commit"] = i.Commit
	}
	if i.BuildTime != "" {
		f["build_time"] = i.BuildTime
	}
	return f
}

package version

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time with -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info describes the running binary.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit,omitempty"`
	BuildTime string    `json:"build_time,omitempty"`
	GoVersion string    `json:"go_version"`
	BuildDate time.Time `json:"build_date,omitzero"`
	IsRelease bool      `json:"is_release"`
	IsDirty   bool      `json:"is_dirty"`
}

// GetVersionInfo combines the ldflags variables with the VCS stamp the Go
// toolchain embeds. ldflags values win when both are present.
func GetVersionInfo() *Info {
	bi, _ := debug.ReadBuildInfo()
	return newInfo(bi)
}

func newInfo(bi *debug.BuildInfo) *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}

	if bi != nil {
		info.GoVersion = bi.GoVersion
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = shortCommit(setting.Value)
				}
			case "vcs.modified":
				info.IsDirty = setting.Value == "true"
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = setting.Value
				}
			}
		}
	}

	if t, err := time.Parse(time.RFC3339, info.BuildTime); err == nil {
		info.BuildDate = t.UTC()
	}
	return info
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Short returns version[-commit][-dirty].
func (i *Info) Short() string {
	parts := []string{i.Version}
	if i.GitCommit != "" {
		parts = append(parts, i.GitCommit)
	}
	if i.IsDirty {
		parts = append(parts, "dirty")
	}
	return strings.Join(parts, "-")
}

// Fprint writes the multi-line report printed by the version command.
func (i *Info) Fprint(w io.Writer) error {
	build := "unknown"
	if !i.BuildDate.IsZero() {
		build = i.BuildDate.Format(time.RFC3339)
	}
	goVersion := i.GoVersion
	if goVersion == "" {
		goVersion = "unknown"
	}
	_, err := fmt.Fprintf(w, "version %s\nbuilt   %s\ngo      %s\n", i.Short(), build, goVersion)
	return err
}

// GetShortVersion returns the short version of the running binary.
func GetShortVersion() string {
	return GetVersionInfo().Short()
}

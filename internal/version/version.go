// Package version reports build metadata for the jproj binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set with -ldflags "-X github.com/opmodel/jproj/internal/version.Version=...".
var (
	Version   = "v0.0.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const unknown = "unknown"

// Info is the build metadata of the running binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`

	// CUESDKVersion is the linked cuelang.org/go version, which checks
	// override templates against the embedded schema.
	CUESDKVersion string `json:"cueSDKVersion" yaml:"cueSDKVersion"`
}

// Get collects the ldflags values and the module versions linked in.
func Get() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		CUESDKVersion: moduleVersion("cuelang.org/go"),
	}
}

// String renders the block printed by "jproj version".
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "jproj version %s\n", i.Version)
	for _, row := range [][2]string{
		{"Commit", i.GitCommit},
		{"Built", i.BuildDate},
		{"Go", i.GoVersion},
		{"CUE SDK", i.CUESDKVersion},
	} {
		fmt.Fprintf(&sb, "  %-10s %s\n", row[0]+":", row[1])
	}
	return sb.String()
}

func moduleVersion(path string) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return unknown
	}
	for _, m := range bi.Deps {
		if m.Path != path {
			continue
		}
		if m.Replace != nil {
			m = m.Replace
		}
		if m.Version == "" {
			return unknown
		}
		return m.Version
	}
	return unknown
}

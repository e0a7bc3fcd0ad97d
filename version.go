package hoprelay

import (
	"fmt"
	"io"
	"runtime"
)

// Set with -ldflags -X at build time
var (
	Version   = "v0.1.0"
	GitRev    = "undefined"
	GitBranch = "undefined"
	BuildDate = "undefined"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string
	GitRev    string
	GitBranch string
	BuildDate string
	GoVersion string
	OS        string
	Arch      string
}

func GetVersion() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitRev:    GitRev,
		GitBranch: GitBranch,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// PrintVersion writes the output of the version command
func PrintVersion(w io.Writer) {
	fmt.Fprint(w, GetVersion().String())
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("hop-relay %s\n"+
		"Git revision: %s\n"+
		"Git branch:   %s\n"+
		"Go version:   %s\n"+
		"Built:        %s\n"+
		"OS/Arch:      %s/%s\n",
		b.Version, b.GitRev, b.GitBranch,
		b.GoVersion, b.BuildDate, b.OS, b.Arch)
}

// KeyValues are the fields logged when the node starts in production
func (b BuildInfo) KeyValues() []interface{} {
	return []interface{}{
		"version", b.Version,
		"gitRevision", b.GitRev,
		"gitBranch", b.GitBranch,
		"goVersion", b.GoVersion,
		"built", b.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", b.OS, b.Arch),
	}
}

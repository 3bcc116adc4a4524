package version

import (
	"fmt"
	"os"
	"runtime/debug"
)

func GetVersion() *debug.BuildInfo {
	bi, _ := debug.ReadBuildInfo()
	return bi
}

// Short returns the main module version, "(devel)" for local builds, or
// "unknown" when no build info is embedded.
func Short() string {
	bi := GetVersion()
	if bi == nil || bi.Main.Version == "" {
		return "unknown"
	}
	return bi.Main.Version
}

// PrintVersion prints the full build info and exits when requested or when
// HUE_VERSION is set; otherwise it returns.
func PrintVersion(requested bool) {
	if !requested && os.Getenv("HUE_VERSION") == "" {
		return
	}

	bi := GetVersion()
	if bi == nil {
		fmt.Fprintf(os.Stderr, "ReadBuildInfo() failed\n")
		os.Exit(1)
	}

	fmt.Printf("%s", bi)
	os.Exit(0)
}

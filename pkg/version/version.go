package version

// Version information set by build flags
// Version is the current version of Stone.
// Set using -ldflags "-X go.minekube.com/stone/pkg/version.Version=v1.2.3"
var version string = "unknown"

func String() string {
	return version
}

package version

// Version and Commit are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = ""
)

// Get returns the current version string.
func Get() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if Commit != "" {
		return v + " (" + Commit + ")"
	}
	return v
}

package version

// Overridden at build time via -ldflags.
var (
	version = "v0.1.0"
	commit  = ""
)

func Get() string {
	if commit != "" {
		return version + "+" + commit
	}
	return version
}

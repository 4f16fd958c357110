package version

import "github.com/fatih/color"

// Version information for the synerr CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMainColor   = color.New(color.FgGreen, color.Bold)
	versionSuffixColor = color.New(color.FgYellow)
)

// Colored renders v with the release part and any pre-release suffix painted.
// Colour follows color.NoColor unless force is set.
func Colored(v string, force bool) string {
	main, suffix := v, ""
	for i := 0; i < len(v); i++ {
		if v[i] == '-' || v[i] == '+' {
			main, suffix = v[:i], v[i:]
			break
		}
	}
	mc, sc := *versionMainColor, *versionSuffixColor
	if force {
		mc.EnableColor()
		sc.EnableColor()
	}
	out := mc.Sprint(main)
	if suffix != "" {
		out += sc.Sprint(suffix)
	}
	return out
}

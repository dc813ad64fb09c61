// Package version holds build information for the csskit binary.
// The variables are set at link time with -ldflags "-X".
package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildDate = ""
)

var partColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Colored renders Version with each numeric part in its own colour.
// color.NoColor disables the escapes.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.Split(core, ".")
	for i, p := range parts {
		if i < len(partColors) {
			parts[i] = partColors[i].Sprint(p)
		}
	}
	out := strings.Join(parts, ".")
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Fingerprint is a single-line summary used as part of cache keys.
func Fingerprint() string {
	return fmt.Sprintf("csskit/%s+%s", Version, GitCommit)
}

// Lines returns the "version" command output without colours applied to
// the optional fields.
func Lines() []string {
	out := []string{"csskit " + Colored()}
	if GitCommit != "" {
		out = append(out, "commit: "+GitCommit)
	}
	if BuildDate != "" {
		out = append(out, "built:  "+BuildDate)
	}
	return out
}

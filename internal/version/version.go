package version

import (
	goversion "github.com/mcuadros/go-version"
)

// Version is the released version of the tool.
const Version = "1.0.0"

// Satisfies reports whether the running tool is at least min.
// An empty min is always satisfied.
func Satisfies(min string) bool {
	if min == "" {
		return true
	}
	return goversion.Compare(goversion.Normalize(Version), goversion.Normalize(min), ">=")
}

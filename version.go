// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package sqlitemgr

import (
	"github.com/maloquacious/semver"
)

var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

// Version returns the version of the manager library and the sqlitemgr
// command built from it.
func Version() semver.Version {
	return version
}

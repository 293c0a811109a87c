// Package snapshot wraps cupaloy with the defaults used across this repo's
// golden-file tests.
package snapshot

import (
	"github.com/bradleyjkemp/cupaloy/v2"
)

// NewDefaultConfig returns a cupaloy config storing snapshots under a
// .snapshots directory next to the test, updated only when UPDATE_SNAPSHOTS
// is set.
func NewDefaultConfig() *cupaloy.Config {
	return cupaloy.NewDefaultConfig().WithOptions(
		cupaloy.SnapshotSubdirectory(".snapshots"),
		cupaloy.EnvVariableName("UPDATE_SNAPSHOTS"),
	)
}

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })

	Version, Commit, Date = "1.2.3", "abc123", "2026-01-02"
	assert.Equal(t, "flatcfg version 1.2.3\n  commit: abc123\n  built:  2026-01-02\n", String())
}

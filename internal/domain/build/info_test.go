package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_Short(t *testing.T) {
	assert.Equal(t, "dev", Info{Version: "dev", Commit: "none"}.Short())
	assert.Equal(t, "v0.1.0", Info{Version: "v0.1.0"}.Short())
	assert.Equal(t, "v0.1.0 (abcdef1)", Info{Version: "v0.1.0", Commit: "abcdef1234567"}.Short())
}

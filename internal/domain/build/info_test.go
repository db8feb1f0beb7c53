package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	assert.Equal(t, "dev", Info{}.String())
	assert.Equal(t, "v1.2.0", Info{Version: "v1.2.0"}.String())
	assert.Equal(t, "v1.2.0 (abc123, built 2026-01-01, go1.25.3)",
		Info{Version: "v1.2.0", Commit: "abc123", BuildDate: "2026-01-01", GoVersion: "go1.25.3"}.String())
}

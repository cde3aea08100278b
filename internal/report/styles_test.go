package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderStylePassthrough(t *testing.T) {
	assert.Equal(t, "plain text", RenderStyle(StyleViolation, "plain text", false))
	assert.Equal(t, "plain text", RenderStyle(StyleSuccess, "plain text", false))
}

func TestDetectColorForced(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	assert.True(t, DetectColor(true))
}

func TestDetectColorEnvOverride(t *testing.T) {
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, DetectColor(false))
}

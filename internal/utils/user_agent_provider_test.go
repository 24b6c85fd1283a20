package utils

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewStaticUserAgentProvider tests the NewStaticUserAgentProvider function.
func TestNewStaticUserAgentProvider(t *testing.T) {
	t.Parallel()

	provider := NewStaticUserAgentProvider("TestAgent/1.0", "siren-grabber", "1.0.0")

	assert.NotNil(t, provider)
	assert.Implements(t, (*UserAgentProvider)(nil), provider)
	assert.Equal(t, "TestAgent/1.0", provider.GetUserAgent())
}

// TestStaticUserAgentProvider_Fallback tests that an empty User-Agent is derived from product and version.
func TestStaticUserAgentProvider_Fallback(t *testing.T) {
	t.Parallel()

	provider := NewStaticUserAgentProvider("", "siren-grabber", "1.2.3")

	expected := "siren-grabber/1.2.3 (" + runtime.GOOS + "; " + runtime.GOARCH + ")"
	assert.Equal(t, expected, provider.GetUserAgent())
}

// TestStaticUserAgentProvider_MultipleInstances tests that providers do not share state.
func TestStaticUserAgentProvider_MultipleInstances(t *testing.T) {
	t.Parallel()

	first := NewStaticUserAgentProvider("Agent/1", "", "")
	second := NewStaticUserAgentProvider("Agent/2", "", "")

	assert.Equal(t, "Agent/1", first.GetUserAgent())
	assert.Equal(t, "Agent/2", second.GetUserAgent())
}

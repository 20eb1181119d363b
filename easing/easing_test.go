package easing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/bsmap/easing"
)

func TestEveryEasingHitsEndpoints(t *testing.T) {
	for _, name := range easing.Names() {
		f, ok := easing.Get(name)
		require.True(t, ok, name)
		if name != "easeStep" {
			assert.InDelta(t, 0, f(0), 1e-9, name)
		}
		assert.InDelta(t, 1, f(1), 1e-9, name)
	}
}

func TestForEventBox(t *testing.T) {
	assert.InDelta(t, 0.25, easing.ForEventBox(1)(0.5), 1e-9)
	assert.InDelta(t, 0.75, easing.ForEventBox(2)(0.5), 1e-9)
	assert.InDelta(t, 0.5, easing.ForEventBox(0)(0.5), 1e-9)
	assert.InDelta(t, 0.5, easing.ForEventBox(42)(0.5), 1e-9)
}

func TestGetUnknown(t *testing.T) {
	_, ok := easing.Get("easeSideways")
	assert.False(t, ok)
}

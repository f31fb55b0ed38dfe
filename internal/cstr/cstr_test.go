// SPDX-License-Identifier: Unlicense OR MIT

package cstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	p, err := String("EGL_KHR_image_base")
	require.NoError(t, err)
	assert.Equal(t, "EGL_KHR_image_base", GoString(p))
	assert.Equal(t, "", GoString(nil))
}

func TestNUL(t *testing.T) {
	_, err := String("egl\x00GetDisplay")
	assert.Error(t, err)
	assert.Panics(t, func() { Must("a\x00b") })
}

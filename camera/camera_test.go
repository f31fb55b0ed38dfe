// SPDX-License-Identifier: Unlicense OR MIT

package camera_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pvrsdk/native/camera"
)

func TestUnsupported(t *testing.T) {
	c := camera.New()
	assert.ErrorIs(t, c.InitializeSession(camera.Back, 640, 480), camera.ErrUnsupported)
	assert.False(t, c.UpdateImage())
	assert.False(t, c.HasProjectionMatrixChanged())
	assert.False(t, c.HasRGBTexture())
	assert.False(t, c.HasLumaChromaTextures())
	assert.Zero(t, c.Texture(camera.Luma))
	w, h := c.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
	m := c.ProjectionMatrix()
	assert.Equal(t, float32(1), m[0])
	assert.Equal(t, float32(1), m[15])
	assert.Zero(t, m[1])
	c.DestroySession()
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "back", camera.Back.String())
	assert.Equal(t, "front", camera.Front.String())
	assert.Equal(t, "unknown", camera.Position(7).String())
}

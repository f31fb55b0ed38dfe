// SPDX-License-Identifier: Unlicense OR MIT

package glsc2_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvrsdk/native/glsc2"
)

func TestError(t *testing.T) {
	assert.NoError(t, glsc2.Error(glsc2.NO_ERROR))
	assert.EqualError(t, glsc2.Error(glsc2.OUT_OF_MEMORY), "glsc2: GL_OUT_OF_MEMORY (0x505)")
	assert.EqualError(t, glsc2.Error(0x1234), "glsc2: error 0x1234")

	var ce *glsc2.CallError
	require.True(t, errors.As(glsc2.Error(glsc2.INVALID_VALUE), &ce))
	assert.Equal(t, glsc2.Enum(glsc2.INVALID_VALUE), ce.Code)
}

// SPDX-License-Identifier: Unlicense OR MIT

package ocl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	assert.NoError(t, Error(SUCCESS))
	assert.EqualError(t, Error(INVALID_PLATFORM), "ocl: CL_INVALID_PLATFORM (-32)")
	assert.EqualError(t, Error(-9999), "ocl: error -9999")
}

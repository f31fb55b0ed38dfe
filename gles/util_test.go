// SPDX-License-Identifier: Unlicense OR MIT

package gles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvrsdk/native/gles"
	"github.com/pvrsdk/native/gles/glestest"
)

const (
	vsSrc = "attribute highp vec4 myVertex; void main() { gl_Position = myVertex; }"
	fsSrc = "void main() { gl_FragColor = vec4(1.0); }"
)

func TestCreateProgram(t *testing.T) {
	d := glestest.New("OpenGL ES 2.0", "")
	f, err := newLoader(d).ES20()
	require.NoError(t, err)

	prog, err := gles.CreateProgram(f, vsSrc, fsSrc, []string{"myVertex"})
	require.NoError(t, err)
	assert.NotZero(t, prog)
	_, shaders, programs := d.Live()
	assert.Equal(t, 0, shaders, "shaders are released once linked")
	assert.Equal(t, 1, programs)
}

func TestCreateProgramCompileError(t *testing.T) {
	d := glestest.New("OpenGL ES 2.0", "")
	d.FailShader("gl_FragColor")
	f, err := newLoader(d).ES20()
	require.NoError(t, err)

	_, err = gles.CreateProgram(f, vsSrc, fsSrc, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shader compilation failed: ERROR: 0:1: syntax error")
	_, shaders, programs := d.Live()
	assert.Zero(t, shaders)
	assert.Zero(t, programs)
}

func TestParseVersion(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want [2]int
		ok   bool
	}{
		{"OpenGL ES 3.2 build 1.13@5776728", [2]int{3, 2}, true},
		{"OpenGL ES 2.0", [2]int{2, 0}, true},
		{"OpenGL SC 2.0", [2]int{2, 0}, true},
		{"3.1 Mesa", [2]int{3, 1}, true},
		{"garbage", [2]int{}, false},
	} {
		got, err := gles.ParseVersion(tc.in)
		if !tc.ok {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestBytesView(t *testing.T) {
	assert.Nil(t, gles.BytesView([]float32(nil)))
	assert.Len(t, gles.BytesView([]float32{1, 2, 3}), 12)
	assert.Equal(t, []byte{1, 0, 2, 0}, gles.BytesView([]uint16{1, 2}))
}

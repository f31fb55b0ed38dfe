// SPDX-License-Identifier: Unlicense OR MIT

package glsc2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/bind/bindtest"
	"github.com/pvrsdk/native/glsc2"
	"github.com/pvrsdk/native/internal/cstr"
)

func newLoader(lib *bindtest.Library) *glsc2.Loader {
	return glsc2.NewLoader(
		glsc2.WithSource(lib.Opener()),
		glsc2.WithRegistrar(bindtest.Register),
		glsc2.WithLogger(zap.NewNop()),
	)
}

func fakeLibrary(errCode *glsc2.Enum) *bindtest.Library {
	exts := cstr.Must("GL_EXT_robustness GL_OES_vertex_half_float")
	return bindtest.NewLibrary("libGLSCv2.so", map[string]any{
		"glGetString": func(name glsc2.Enum) *byte {
			if name == glsc2.EXTENSIONS {
				return exts
			}
			return nil
		},
		"glGetError": func() glsc2.Enum {
			code := *errCode
			*errCode = glsc2.NO_ERROR
			return code
		},
		"glClear": func(mask glsc2.Bitfield) {},
	})
}

func TestLoad(t *testing.T) {
	var code glsc2.Enum
	lib := fakeLibrary(&code)
	l := newLoader(lib)

	f, err := l.Functions()
	require.NoError(t, err)
	assert.NotNil(t, f.Clear)
	assert.Nil(t, f.DrawArrays)
	assert.True(t, l.Table().Has(glsc2.FuncClear))
	assert.ErrorIs(t, l.Table().Require(glsc2.FuncClear, glsc2.FuncDrawArrays), bind.ErrSymbolNotFound)
	assert.Equal(t, l.Table().Len()-3, len(l.Table().Missing()))

	require.NoError(t, l.Close())
	assert.True(t, lib.Closed())
}

func TestReloadAfterClose(t *testing.T) {
	var code glsc2.Enum
	lib := fakeLibrary(&code)
	l := newLoader(lib)
	before, err := l.Functions()
	require.NoError(t, err)
	require.NoError(t, l.Close())
	assert.True(t, lib.Closed())

	after, err := l.Functions()
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.Equal(t, 2, lib.Opens())
	assert.True(t, l.ExtensionSupported("GL_EXT_robustness"))
}

func TestMissingLibrary(t *testing.T) {
	l := glsc2.NewLoader(
		glsc2.WithSource(bindtest.Missing("libGLSCv2.so")),
		glsc2.WithLogger(zap.NewNop()),
	)
	_, err := l.Functions()
	assert.ErrorIs(t, err, bind.ErrLibraryNotFound)
	assert.False(t, l.ExtensionSupported("GL_EXT_robustness"))
	assert.ErrorIs(t, l.LastError(), bind.ErrLibraryNotFound)
}

func TestExtensionSupported(t *testing.T) {
	var code glsc2.Enum
	l := newLoader(fakeLibrary(&code))
	assert.True(t, l.ExtensionSupported("GL_EXT_robustness"))
	assert.False(t, l.ExtensionSupported("GL_EXT"))
	l.ResetExtensions()
	assert.True(t, l.ExtensionSupported("GL_OES_vertex_half_float"))
}

func TestLastError(t *testing.T) {
	var code glsc2.Enum
	l := newLoader(fakeLibrary(&code))
	require.NoError(t, l.LastError())
	code = glsc2.CONTEXT_LOST
	assert.EqualError(t, l.LastError(), "glsc2: GL_CONTEXT_LOST (0x507)")
	assert.NoError(t, l.LastError())
}

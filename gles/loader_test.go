// SPDX-License-Identifier: Unlicense OR MIT

package gles_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/bind/bindtest"
	"github.com/pvrsdk/native/egl"
	"github.com/pvrsdk/native/egl/egltest"
	"github.com/pvrsdk/native/gles"
	"github.com/pvrsdk/native/gles/glestest"
)

func newLoader(d *glestest.Driver, opts ...gles.Option) *gles.Loader {
	opts = append([]gles.Option{
		gles.WithSource(d.Lib.Opener()),
		gles.WithProcAddress(d.Lib.ProcAddress),
		gles.WithRegistrar(bindtest.Register),
		gles.WithLogger(zap.NewNop()),
	}, opts...)
	return gles.NewLoader(opts...)
}

func TestTiersShareLibrary(t *testing.T) {
	d := glestest.New("OpenGL ES 2.0", "GL_OES_EGL_image")
	l := newLoader(d)

	f20, err := l.ES20()
	require.NoError(t, err)
	require.NotNil(t, f20.Clear)
	f20.Clear(gles.COLOR_BUFFER_BIT)
	assert.Equal(t, []gles.Bitfield{gles.COLOR_BUFFER_BIT}, d.Clears())

	f30, err := l.ES30()
	require.NoError(t, err)
	assert.Nil(t, f30.GetStringi)
	_, err = l.ES31()
	require.NoError(t, err)
	_, err = l.ES32()
	require.NoError(t, err)
	assert.Equal(t, 1, d.Lib.Opens())

	assert.ErrorIs(t, l.ES30Table().Require(gles.ES30GetStringi), bind.ErrSymbolNotFound)
	assert.Len(t, l.ES32Table().Missing(), l.ES32Table().Len())
	assert.True(t, l.ES20Table().Has(gles.ES20DrawArrays))
	assert.False(t, l.ES20Table().Has(gles.ES20BlendColor))
	assert.False(t, l.ES31Table().Has(gles.ES31DispatchCompute))

	require.NoError(t, l.Close())
	assert.True(t, d.Lib.Closed())
}

func TestReloadAfterClose(t *testing.T) {
	d := glestest.New("OpenGL ES 3.0", "")
	d.AddES30()
	l := newLoader(d)
	before, err := l.ES20()
	require.NoError(t, err)
	_, err = l.ES30()
	require.NoError(t, err)
	require.NoError(t, l.Close())
	assert.True(t, d.Lib.Closed())

	after, err := l.ES20()
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.Equal(t, 2, d.Lib.Opens())
	assert.False(t, d.Lib.Closed())

	f30, err := l.ES30()
	require.NoError(t, err)
	assert.NotNil(t, f30.GetStringi)
	assert.Equal(t, 2, d.Lib.Opens())
	assert.Equal(t, 2, l.ES30Table().Generation())
}

func TestMissingLibrary(t *testing.T) {
	l := gles.NewLoader(
		gles.WithSource(bindtest.Missing("libGLESv2.so")),
		gles.WithProcAddress(func(string) uintptr { return 0 }),
		gles.WithRegistrar(bindtest.Register),
		gles.WithLogger(zap.NewNop()),
	)
	_, err := l.ES20()
	assert.ErrorIs(t, err, bind.ErrLibraryNotFound)
	_, err = l.ES32()
	assert.ErrorIs(t, err, bind.ErrLibraryNotFound)
	assert.False(t, l.ExtensionSupported("GL_OES_EGL_image"))
	_, err = l.Version()
	assert.ErrorIs(t, err, bind.ErrLibraryNotFound)
}

func TestExtensionSupported(t *testing.T) {
	d := glestest.New("OpenGL ES 2.0", "GL_OES_EGL_image GL_EXT_discard_framebuffer")
	l := newLoader(d)

	assert.True(t, l.ExtensionSupported("GL_OES_EGL_image"))
	assert.True(t, l.ExtensionSupported("GL_EXT_discard_framebuffer"))
	assert.False(t, l.ExtensionSupported("GL_OES_EGL"))
	assert.False(t, l.ExtensionSupported(""))
	assert.False(t, l.ExtensionSupported("GL_OES_EGL_image GL_EXT_discard_framebuffer"))
}

func TestExtensionSupportedIndexed(t *testing.T) {
	d := glestest.New("OpenGL ES 3.2 build 1.13@5776728", "")
	d.AddES30("GL_EXT_color_buffer_float", "GL_KHR_debug")
	l := newLoader(d)

	assert.True(t, l.ExtensionSupported("GL_KHR_debug"))
	assert.True(t, l.ExtensionSupported("GL_EXT_color_buffer_float"))
	assert.False(t, l.ExtensionSupported("GL_KHR"))

	ver, err := l.Version()
	require.NoError(t, err)
	assert.Equal(t, [2]int{3, 2}, ver)
}

func TestExtensionSupportedNegativeCount(t *testing.T) {
	d := glestest.New("OpenGL ES 3.0", "")
	d.AddES30("GL_KHR_debug")
	d.SetInteger(gles.NUM_EXTENSIONS, -1)
	l := newLoader(d)

	assert.NotPanics(t, func() {
		assert.False(t, l.ExtensionSupported("GL_KHR_debug"))
	})
}

func TestExtensionsThroughProcAddress(t *testing.T) {
	d := glestest.New("OpenGL ES 2.0", "")
	var discarded []gles.Enum
	d.Lib.Define("glDiscardFramebufferEXT", func(target gles.Enum, n gles.Sizei, attachments *gles.Enum) {
		discarded = append(discarded, target)
	})
	l := newLoader(d)

	ext, err := l.Extensions()
	require.NoError(t, err)
	require.NotNil(t, ext.DiscardFramebufferEXT)
	ext.DiscardFramebufferEXT(gles.FRAMEBUFFER, 0, nil)
	assert.Equal(t, []gles.Enum{gles.FRAMEBUFFER}, discarded)
	assert.Nil(t, ext.DebugMessageCallbackKHR)
	assert.False(t, l.ExtensionTable().Has(gles.ExtDebugMessageCallbackKHR))

	d.Lib.Define("glDebugMessageCallbackKHR", func(cb uintptr, user unsafe.Pointer) {})
	ext, err = l.ResetExtensions()
	require.NoError(t, err)
	assert.NotNil(t, ext.DebugMessageCallbackKHR)
	assert.Equal(t, 2, l.ExtensionTable().Generation())
}

func TestExtensionsThroughEGL(t *testing.T) {
	drv := egltest.New("")
	el := egl.NewLoader(egl.WithSource(drv.Lib.Opener()), egl.WithRegistrar(bindtest.Register), egl.WithLogger(zap.NewNop()))
	drv.Lib.Define("glDiscardFramebufferEXT", func(target gles.Enum, n gles.Sizei, attachments *gles.Enum) {})

	d := glestest.New("OpenGL ES 2.0", "")
	l := newLoader(d, gles.WithEGL(el))
	ext, err := l.Extensions()
	require.NoError(t, err)
	assert.NotNil(t, ext.DiscardFramebufferEXT)
}

func TestResetExtensionsDropsCache(t *testing.T) {
	d := glestest.New("OpenGL ES 3.0", "")
	d.AddES30("GL_KHR_debug")
	l := newLoader(d)
	assert.True(t, l.ExtensionSupported("GL_KHR_debug"))
	d.AddES30("GL_OES_texture_3D")
	assert.False(t, l.ExtensionSupported("GL_OES_texture_3D"))
	_, err := l.ResetExtensions()
	require.NoError(t, err)
	assert.True(t, l.ExtensionSupported("GL_OES_texture_3D"))
}

func TestLastError(t *testing.T) {
	d := glestest.New("OpenGL ES 2.0", "")
	l := newLoader(d)
	require.NoError(t, l.LastError())
	d.SetError(gles.INVALID_OPERATION)
	err := l.LastError()
	var ce *gles.CallError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, gles.Enum(gles.INVALID_OPERATION), ce.Code)
	assert.EqualError(t, err, "gles: GL_INVALID_OPERATION (0x502)")
	assert.EqualError(t, gles.Error(0x1234), "gles: error 0x1234")
}

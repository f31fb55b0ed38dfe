// SPDX-License-Identifier: Unlicense OR MIT

package egl_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/bind/bindtest"
	"github.com/pvrsdk/native/egl"
	"github.com/pvrsdk/native/egl/egltest"
)

func newLoader(open func() (bind.Source, error)) *egl.Loader {
	return egl.NewLoader(
		egl.WithSource(open),
		egl.WithRegistrar(bindtest.Register),
		egl.WithLogger(zap.NewNop()),
	)
}

func TestCoreForwards(t *testing.T) {
	d := egltest.New("EGL_KHR_image_base")
	l := newLoader(d.Lib.Opener())

	f, err := l.Core()
	require.NoError(t, err)
	dpy := f.GetDisplay(egl.DefaultDisplay)
	assert.Equal(t, egltest.Display, dpy)
	var major, minor egl.Int
	require.Equal(t, egl.Boolean(egl.TRUE), f.Initialize(dpy, &major, &minor))
	assert.Equal(t, egl.Int(1), major)
	assert.Equal(t, egl.Int(5), minor)
	assert.True(t, d.Initialized())

	assert.True(t, l.CoreTable().Has(egl.CoreInitialize))
	assert.False(t, l.CoreTable().Has(egl.CoreCreateSync))
	assert.ErrorIs(t, l.CoreTable().Require(egl.CoreCreateSync), bind.ErrSymbolNotFound)
}

func TestMissingLibrary(t *testing.T) {
	l := newLoader(bindtest.Missing("libEGL.so.1"))

	_, err := l.Core()
	assert.ErrorIs(t, err, bind.ErrLibraryNotFound)
	_, err = l.Extensions()
	assert.ErrorIs(t, err, bind.ErrLibraryNotFound)
	assert.Zero(t, l.ProcAddress("eglCreateImageKHR"))
	assert.False(t, l.ExtensionSupported("EGL_KHR_image_base"))
	assert.ErrorIs(t, l.LastError(), bind.ErrLibraryNotFound)
}

func TestExtensionsThroughProcAddress(t *testing.T) {
	d := egltest.New("")
	l := newLoader(d.Lib.Opener())

	ext, err := l.Extensions()
	require.NoError(t, err)
	require.NotNil(t, ext.CreateImageKHR)
	assert.Nil(t, ext.CreateSyncKHR)
	assert.NotZero(t, ext.CreateImageKHR(egltest.Display, egl.NoContext, 0, 0, nil))
	assert.True(t, l.ExtensionTable().Has(egl.ExtDestroyImageKHR))
	assert.Contains(t, l.ExtensionTable().Missing(), "eglCreateSyncKHR")
	assert.Equal(t, d.Lib.Addr("eglDestroyImageKHR"), l.ProcAddress("eglDestroyImageKHR"))
}

func TestResetExtensions(t *testing.T) {
	d := egltest.New("")
	l := newLoader(d.Lib.Opener())

	old, err := l.Extensions()
	require.NoError(t, err)
	assert.Nil(t, old.CreateSyncKHR)

	d.Lib.Define("eglCreateSyncKHR", func(dpy egl.Display, typ egl.Enum, attribList *egl.Int) egl.Sync {
		return 7
	})
	cur, err := l.ResetExtensions()
	require.NoError(t, err)
	require.NotNil(t, cur.CreateSyncKHR)
	assert.Equal(t, egl.Sync(7), cur.CreateSyncKHR(egltest.Display, egl.SYNC_FENCE, nil))
	assert.Equal(t, 2, l.ExtensionTable().Generation())
	assert.Equal(t, 1, d.Lib.Opens())
}

func TestExtensionSupportedCaches(t *testing.T) {
	d := egltest.New("EGL_KHR_image_base EGL_KHR_fence_sync")
	l := newLoader(d.Lib.Opener())
	f, err := l.Core()
	require.NoError(t, err)

	// Without a current context the current display is EGL_NO_DISPLAY.
	assert.False(t, l.ExtensionSupported("EGL_KHR_image_base"))

	f.MakeCurrent(egltest.Display, 0, 0, 1)
	assert.True(t, l.ExtensionSupported("EGL_KHR_image_base"))
	assert.True(t, l.ExtensionSupported("EGL_KHR_fence_sync"))
	assert.False(t, l.ExtensionSupported("EGL_KHR_image"))
	assert.False(t, l.ExtensionSupported(""))
	assert.False(t, l.ExtensionSupported("EGL_KHR_image_base EGL_KHR_fence_sync"))

	d.SetExtensions(egltest.Display, "EGL_ANDROID_native_fence_sync")
	assert.False(t, l.ExtensionSupported("EGL_ANDROID_native_fence_sync"), "cached string")
	assert.True(t, l.DisplayExtensionSupported(egltest.Display, "EGL_ANDROID_native_fence_sync"))

	_, err = l.ResetExtensions()
	require.NoError(t, err)
	assert.True(t, l.ExtensionSupported("EGL_ANDROID_native_fence_sync"))
	assert.False(t, l.ExtensionSupported("EGL_KHR_image_base"))
}

func TestExtensionSupportedIgnoresClientExtensions(t *testing.T) {
	d := egltest.New("EGL_KHR_image_base")
	d.SetExtensions(egl.NoDisplay, "EGL_EXT_client_extensions EGL_EXT_platform_base")
	l := newLoader(d.Lib.Opener())
	f, err := l.Core()
	require.NoError(t, err)

	assert.False(t, l.ExtensionSupported("EGL_EXT_platform_base"))
	assert.False(t, l.ExtensionSupported("EGL_KHR_image_base"))
	assert.True(t, l.DisplayExtensionSupported(egl.NoDisplay, "EGL_EXT_platform_base"))

	f.MakeCurrent(egltest.Display, 0, 0, 1)
	assert.True(t, l.ExtensionSupported("EGL_KHR_image_base"))
	assert.False(t, l.ExtensionSupported("EGL_EXT_platform_base"))
}

func TestLastError(t *testing.T) {
	d := egltest.New("")
	l := newLoader(d.Lib.Opener())
	f, err := l.Core()
	require.NoError(t, err)

	require.NoError(t, l.LastError())
	d.Fail("eglCreateContext", egl.BAD_CONFIG)
	assert.Equal(t, egl.NoContext, f.CreateContext(egltest.Display, 1, egl.NoContext, nil))
	err = l.LastError()
	var ce *egl.CallError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, egl.Int(egl.BAD_CONFIG), ce.Code)
	assert.Equal(t, "egl: EGL_BAD_CONFIG (0x3005)", err.Error())
	assert.NoError(t, l.LastError(), "eglGetError clears the code")
}

func TestClose(t *testing.T) {
	d := egltest.New("")
	l := newLoader(d.Lib.Opener())
	_, err := l.Core()
	require.NoError(t, err)
	require.NoError(t, l.Close())
	assert.True(t, d.Lib.Closed())
}

func TestReloadAfterClose(t *testing.T) {
	d := egltest.New("")
	l := newLoader(d.Lib.Opener())
	before, err := l.Core()
	require.NoError(t, err)
	_, err = l.Extensions()
	require.NoError(t, err)
	require.NoError(t, l.Close())
	assert.True(t, d.Lib.Closed())
	assert.Equal(t, 0, l.CoreTable().Generation())

	after, err := l.Core()
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.Equal(t, 2, d.Lib.Opens())
	assert.False(t, d.Lib.Closed())
	assert.Equal(t, 2, l.CoreTable().Generation())

	_, err = l.Extensions()
	require.NoError(t, err)
	assert.Equal(t, 2, d.Lib.Opens(), "extension table reuses the reopened library")
}

func TestError(t *testing.T) {
	assert.NoError(t, egl.Error(egl.SUCCESS))
	assert.EqualError(t, egl.Error(egl.CONTEXT_LOST), "egl: EGL_CONTEXT_LOST (0x300e)")
	assert.EqualError(t, egl.Error(0x1234), "egl: error 0x1234")
}

func TestAttribs(t *testing.T) {
	kv := []egl.Int{egl.RED_SIZE, 8, egl.GREEN_SIZE, 8}
	assert.Equal(t, []egl.Int{egl.RED_SIZE, 8, egl.GREEN_SIZE, 8, egl.NONE}, egl.Attribs(kv...))
	assert.Len(t, kv, 4)
	assert.Panics(t, func() { egl.Attribs(egl.RED_SIZE) })
}

// SPDX-License-Identifier: Unlicense OR MIT

package helloapi_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/bind/bindtest"
	"github.com/pvrsdk/native/egl"
	"github.com/pvrsdk/native/egl/egltest"
	"github.com/pvrsdk/native/gles"
	"github.com/pvrsdk/native/gles/glestest"
	"github.com/pvrsdk/native/helloapi"
)

type drivers struct {
	egl *egltest.Driver
	gl  *glestest.Driver
}

func newDrivers() drivers {
	return drivers{
		egl: egltest.New("EGL_KHR_surfaceless_context"),
		gl:  glestest.New("OpenGL ES 2.0", "GL_OES_EGL_image"),
	}
}

func (d drivers) app(t *testing.T, opts ...helloapi.Option) *helloapi.App {
	t.Helper()
	el := egl.NewLoader(egl.WithSource(d.egl.Lib.Opener()), egl.WithRegistrar(bindtest.Register), egl.WithLogger(zap.NewNop()))
	gl := gles.NewLoader(gles.WithSource(d.gl.Lib.Opener()), gles.WithEGL(el), gles.WithRegistrar(bindtest.Register), gles.WithLogger(zap.NewNop()))
	a, err := helloapi.New(el, gl, append([]helloapi.Option{helloapi.WithLogger(zap.NewNop())}, opts...)...)
	require.NoError(t, err)
	return a
}

type window egl.NativeWindowType

func (w window) NativeWindow() egl.NativeWindowType { return egl.NativeWindowType(w) }

func TestLifecycle(t *testing.T) {
	d := newDrivers()
	a := d.app(t)
	assert.Equal(t, helloapi.State{}, a.State)

	require.NoError(t, a.Handle(helloapi.InitWindow))
	assert.True(t, a.State.IsInitialised)
	assert.True(t, a.State.IsAnimating)
	assert.False(t, a.State.ErrorOccurred)
	assert.Equal(t, egltest.Display, a.State.Display)
	assert.NotZero(t, a.State.Surface)
	assert.Equal(t, a.State.Context, d.egl.Current())
	data, ok := d.gl.Buffer(a.State.VertexBuffer)
	require.True(t, ok)
	assert.Len(t, data, 3*3*4)
	assert.Contains(t, d.egl.Calls(), "eglCreatePbufferSurface")

	require.NoError(t, a.RenderScene())
	require.NoError(t, a.RenderScene())
	assert.Equal(t, 2, a.Frames())
	assert.Equal(t, 2, d.egl.Swaps())
	assert.Equal(t, [4]gles.Float{0.6, 0.8, 1, 1}, d.gl.ClearColor())
	draws := d.gl.Draws()
	require.Len(t, draws, 2)
	assert.Equal(t, glestest.Draw{Mode: gles.TRIANGLES, First: 0, Count: 3, Program: a.State.Program}, draws[0])

	require.NoError(t, a.Handle(helloapi.Pause))
	assert.False(t, a.State.IsAnimating)
	assert.True(t, a.State.IsInitialised)
	require.NoError(t, a.Handle(helloapi.Resume))
	assert.True(t, a.State.IsAnimating)

	require.NoError(t, a.Handle(helloapi.TermWindow))
	assert.False(t, a.State.IsInitialised)
	assert.False(t, a.State.IsAnimating)
	assert.False(t, a.State.ErrorOccurred)
	assert.False(t, d.egl.Initialized())
	buffers, shaders, programs := d.gl.Live()
	assert.Zero(t, buffers)
	assert.Zero(t, shaders)
	assert.Zero(t, programs)
	assert.Equal(t, helloapi.State{}, a.State)
}

func TestWindowSurface(t *testing.T) {
	d := newDrivers()
	a := d.app(t, helloapi.WithWindow(window(0x77)))
	require.NoError(t, a.Handle(helloapi.InitWindow))
	calls := d.egl.Calls()
	assert.Contains(t, calls, "eglCreateWindowSurface")
	assert.NotContains(t, calls, "eglCreatePbufferSurface")
	assert.Contains(t, calls, "eglSwapInterval")
}

func TestInitFailureLatches(t *testing.T) {
	d := newDrivers()
	d.egl.Fail("eglCreateContext", egl.BAD_CONFIG)
	a := d.app(t)

	err := a.Handle(helloapi.InitWindow)
	var ce *egl.CallError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, egl.Int(egl.BAD_CONFIG), ce.Code)
	assert.True(t, a.State.ErrorOccurred)
	assert.False(t, a.State.IsInitialised)
	assert.True(t, a.State.IsAnimating, "InitWindow continues into Resume")
	assert.Same(t, err, a.Err())
	assert.NotContains(t, d.egl.Calls(), "eglMakeCurrent")

	// No retry once latched.
	n := len(d.egl.Calls())
	require.NoError(t, a.Handle(helloapi.InitWindow))
	assert.Len(t, d.egl.Calls(), n)
	assert.True(t, a.State.ErrorOccurred)

	require.NoError(t, a.Handle(helloapi.TermWindow))
	contexts, surfaces := d.egl.Live()
	assert.Zero(t, contexts)
	assert.Zero(t, surfaces)
}

func TestInitFailureWithoutErrorCode(t *testing.T) {
	d := newDrivers()
	d.egl.Fail("eglMakeCurrent", egl.SUCCESS)
	a := d.app(t)

	err := a.Handle(helloapi.InitWindow)
	require.Error(t, err)
	assert.EqualError(t, err, "eglMakeCurrent failed")
	assert.True(t, a.State.ErrorOccurred)
	assert.False(t, a.State.IsInitialised)
	assert.Same(t, err, a.Err())
}

func TestShaderFailure(t *testing.T) {
	d := newDrivers()
	d.gl.FailShader("gl_FragColor")
	a := d.app(t)

	err := a.Handle(helloapi.InitWindow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shader compilation failed")
	assert.True(t, a.State.ErrorOccurred)
	assert.False(t, a.State.IsInitialised)
}

func TestRun(t *testing.T) {
	d := newDrivers()
	a := d.app(t)

	cmds := make(chan helloapi.Command)
	go func() {
		cmds <- helloapi.InitWindow
		for d.egl.Swaps() < 3 {
			time.Sleep(time.Millisecond)
		}
		cmds <- helloapi.TermWindow
		close(cmds)
	}()
	require.NoError(t, a.Run(context.Background(), cmds))
	assert.GreaterOrEqual(t, a.Frames(), 3)
	assert.False(t, a.State.IsInitialised)
	assert.False(t, a.State.IsAnimating)
	assert.False(t, a.State.ErrorOccurred)
	contexts, surfaces := d.egl.Live()
	assert.Zero(t, contexts)
	assert.Zero(t, surfaces)
}

func TestRunCancel(t *testing.T) {
	d := newDrivers()
	a := d.app(t)

	ctx, cancel := context.WithCancel(context.Background())
	cmds := make(chan helloapi.Command, 1)
	cmds <- helloapi.InitWindow
	go func() {
		for d.egl.Swaps() < 1 {
			time.Sleep(time.Millisecond)
		}
		cancel()
	}()
	err := a.Run(ctx, cmds)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, d.egl.Initialized(), "Run releases EGL on exit")
	buffers, _, programs := d.gl.Live()
	assert.Zero(t, buffers)
	assert.Zero(t, programs)
}

func TestRunRenderFailure(t *testing.T) {
	d := newDrivers()
	d.egl.Fail("eglSwapBuffers", egl.CONTEXT_LOST)
	a := d.app(t)

	cmds := make(chan helloapi.Command, 1)
	cmds <- helloapi.InitWindow
	err := a.Run(context.Background(), cmds)
	var ce *egl.CallError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, egl.Int(egl.CONTEXT_LOST), ce.Code)
	assert.Contains(t, err.Error(), "eglSwapBuffers failed")
	assert.True(t, a.State.ErrorOccurred)
	assert.Zero(t, a.Frames())
}

func TestNewRequiresEntryPoints(t *testing.T) {
	d := newDrivers()
	d.egl.Lib.Remove("eglSwapBuffers")
	el := egl.NewLoader(egl.WithSource(d.egl.Lib.Opener()), egl.WithRegistrar(bindtest.Register), egl.WithLogger(zap.NewNop()))
	gl := gles.NewLoader(gles.WithSource(d.gl.Lib.Opener()), gles.WithEGL(el), gles.WithRegistrar(bindtest.Register), gles.WithLogger(zap.NewNop()))
	_, err := helloapi.New(el, gl)
	var se *bind.SymbolError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"eglSwapBuffers"}, se.Names)

	el = egl.NewLoader(egl.WithSource(bindtest.Missing("libEGL.so")), egl.WithLogger(zap.NewNop()))
	_, err = helloapi.New(el, gl)
	assert.ErrorIs(t, err, bind.ErrLibraryNotFound)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "TermWindow", helloapi.TermWindow.String())
	assert.Equal(t, "Command(9)", helloapi.Command(9).String())
}

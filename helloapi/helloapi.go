// SPDX-License-Identifier: Unlicense OR MIT

/*
Package helloapi draws a single triangle with EGL and OpenGL ES 2.0, driven
by the window lifecycle commands of a native activity.

An App owns the EGL display, config, surface and context plus the GL vertex
buffer and program. InitWindow creates them in order and stops at the first
failure, which latches ErrorOccurred for good. TermWindow releases them
again. While the App is initialized and animating, Run renders a frame per
loop iteration.
*/
package helloapi

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/image/math/f32"

	"github.com/pvrsdk/native/egl"
	"github.com/pvrsdk/native/gles"
	"github.com/pvrsdk/native/internal/cstr"
	"github.com/pvrsdk/native/internal/log"
)

// State is the tutorial state. The zero value is uninitialized.
type State struct {
	Display      egl.Display
	Config       egl.Config
	Context      egl.Context
	Surface      egl.Surface
	VertexBuffer gles.Uint
	Program      gles.Uint

	IsAnimating   bool
	IsInitialised bool
	ErrorOccurred bool
}

// Command is a window lifecycle command.
type Command int

const (
	InitWindow Command = iota
	Resume
	TermWindow
	Pause
	SaveState
)

func (c Command) String() string {
	switch c {
	case InitWindow:
		return "InitWindow"
	case Resume:
		return "Resume"
	case TermWindow:
		return "TermWindow"
	case Pause:
		return "Pause"
	case SaveState:
		return "SaveState"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Window is a native window to render into.
type Window interface {
	NativeWindow() egl.NativeWindowType
}

var (
	triangle = [3]f32.Vec3{
		{-0.4, -0.4, 0}, // bottom left
		{0.4, -0.4, 0},  // bottom right
		{0, 0.4, 0},     // top middle
	}
	clearColor = f32.Vec4{0.6, 0.8, 1, 1}
	identity   = f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
)

const (
	vertexShader = `attribute highp vec4 myVertex;
uniform mediump mat4 transformationMatrix;
void main(void)
{
	gl_Position = transformationMatrix * myVertex;
}
`
	fragmentShader = `void main(void)
{
	gl_FragColor = vec4(1.0, 1.0, 0.66, 1.0);
}
`
	vertexArray = 0
)

var (
	eglRequired = []egl.CoreID{
		egl.CoreGetDisplay, egl.CoreInitialize, egl.CoreTerminate,
		egl.CoreBindAPI, egl.CoreChooseConfig, egl.CoreCreateContext,
		egl.CoreDestroyContext, egl.CoreCreateWindowSurface,
		egl.CoreCreatePbufferSurface, egl.CoreDestroySurface,
		egl.CoreMakeCurrent, egl.CoreSwapBuffers, egl.CoreSwapInterval,
		egl.CoreGetError, egl.CoreReleaseThread,
	}
	glRequired = []gles.ES20ID{
		gles.ES20GenBuffers, gles.ES20BindBuffer, gles.ES20BufferData,
		gles.ES20DeleteBuffers, gles.ES20CreateShader, gles.ES20ShaderSource,
		gles.ES20CompileShader, gles.ES20GetShaderiv, gles.ES20GetShaderInfoLog,
		gles.ES20DeleteShader, gles.ES20CreateProgram, gles.ES20AttachShader,
		gles.ES20BindAttribLocation, gles.ES20LinkProgram, gles.ES20GetProgramiv,
		gles.ES20GetProgramInfoLog, gles.ES20UseProgram, gles.ES20DeleteProgram,
		gles.ES20GetUniformLocation, gles.ES20UniformMatrix4fv,
		gles.ES20EnableVertexAttribArray, gles.ES20VertexAttribPointer,
		gles.ES20ClearColor, gles.ES20Clear, gles.ES20DrawArrays, gles.ES20GetError,
	}
)

// App runs the tutorial.
type App struct {
	State State

	egl    *egl.Functions
	gl     *gles.Functions20
	window Window
	width  int
	height int
	log    *zap.Logger

	matrixLoc gles.Int
	frames    int
	err       error
}

// Option configures an App.
type Option func(*App)

// WithWindow renders into w instead of an offscreen pbuffer.
func WithWindow(w Window) Option {
	return func(a *App) { a.window = w }
}

// WithSize sets the size of the offscreen pbuffer.
func WithSize(width, height int) Option {
	return func(a *App) { a.width, a.height = width, height }
}

func WithLogger(l *zap.Logger) Option {
	return func(a *App) { a.log = l }
}

// New returns an uninitialized App. It fails if EGL or OpenGL ES lacks an
// entry point the tutorial calls.
func New(el *egl.Loader, gl *gles.Loader, opts ...Option) (*App, error) {
	ef, err := el.Core()
	if err != nil {
		return nil, err
	}
	if err := el.CoreTable().Require(eglRequired...); err != nil {
		return nil, err
	}
	gf, err := gl.ES20()
	if err != nil {
		return nil, err
	}
	if err := gl.ES20Table().Require(glRequired...); err != nil {
		return nil, err
	}
	a := &App{egl: ef, gl: gf, width: 640, height: 480}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = log.L()
	}
	a.log = a.log.Named("helloapi")
	return a, nil
}

// Err returns the failure that latched ErrorOccurred.
func (a *App) Err() error {
	return a.err
}

// Frames counts the frames rendered.
func (a *App) Frames() int {
	return a.frames
}

// Handle applies a lifecycle command. InitWindow continues into Resume and
// TermWindow continues into Pause, so a shown window starts animating and a
// hidden one stops. Every call must come from the OS thread that handled
// InitWindow.
func (a *App) Handle(cmd Command) error {
	a.log.Debug("command", zap.Stringer("cmd", cmd))
	var err error
	switch cmd {
	case InitWindow:
		if !a.State.IsInitialised && !a.State.ErrorOccurred {
			if err = a.initialise(); err != nil {
				a.fail(err)
			} else {
				a.State.IsInitialised = true
			}
		}
		fallthrough
	case Resume:
		a.State.IsAnimating = true
	case TermWindow:
		a.release()
		a.State.IsInitialised = false
		fallthrough
	case Pause, SaveState:
		a.State.IsAnimating = false
	}
	return err
}

func (a *App) fail(err error) {
	a.log.Error("hello api failed", zap.Error(err))
	a.State.ErrorOccurred = true
	if a.err == nil {
		a.err = err
	}
}

func (a *App) initialise() error {
	if err := a.createDisplay(); err != nil {
		return err
	}
	if err := a.chooseConfig(); err != nil {
		return err
	}
	if err := a.createSurface(); err != nil {
		return err
	}
	if err := a.setupContext(); err != nil {
		return err
	}
	return a.initialiseBuffer()
}

// eglFailed reports the failure of fn. The result is never nil, even when
// the driver left the error code at EGL_SUCCESS.
func (a *App) eglFailed(fn string) error {
	if err := egl.Error(a.egl.GetError()); err != nil {
		return fmt.Errorf("%s failed: %w", fn, err)
	}
	return fmt.Errorf("%s failed", fn)
}

func (a *App) glError(fn string) error {
	if err := gles.Error(a.gl.GetError()); err != nil {
		return fmt.Errorf("%s failed: %w", fn, err)
	}
	return nil
}

func (a *App) createDisplay() error {
	dpy := a.egl.GetDisplay(egl.DefaultDisplay)
	if dpy == egl.NoDisplay {
		return errors.New("failed to get an EGLDisplay")
	}
	a.State.Display = dpy
	var major, minor egl.Int
	if a.egl.Initialize(dpy, &major, &minor) != egl.TRUE {
		return a.eglFailed("eglInitialize")
	}
	a.log.Info("EGL initialized", zap.Int32("major", int32(major)), zap.Int32("minor", int32(minor)))
	return nil
}

func (a *App) chooseConfig() error {
	surfaceType := egl.Int(egl.PBUFFER_BIT)
	if a.window != nil {
		surfaceType = egl.WINDOW_BIT
	}
	attribs := egl.Attribs(
		egl.SURFACE_TYPE, surfaceType,
		egl.RENDERABLE_TYPE, egl.OPENGL_ES2_BIT,
		egl.RED_SIZE, 8,
		egl.GREEN_SIZE, 8,
		egl.BLUE_SIZE, 8,
		egl.CONFIG_CAVEAT, egl.NONE,
	)
	var n egl.Int
	if a.egl.ChooseConfig(a.State.Display, &attribs[0], &a.State.Config, 1, &n) != egl.TRUE {
		return a.eglFailed("eglChooseConfig")
	}
	if n != 1 {
		return fmt.Errorf("eglChooseConfig returned %d configs", n)
	}
	return nil
}

func (a *App) createSurface() error {
	var surf egl.Surface
	if a.window != nil {
		surf = a.egl.CreateWindowSurface(a.State.Display, a.State.Config, a.window.NativeWindow(), nil)
	} else {
		attribs := egl.Attribs(egl.WIDTH, egl.Int(a.width), egl.HEIGHT, egl.Int(a.height))
		surf = a.egl.CreatePbufferSurface(a.State.Display, a.State.Config, &attribs[0])
	}
	if surf == egl.NoSurface {
		return a.eglFailed("eglCreateSurface")
	}
	a.State.Surface = surf
	return nil
}

func (a *App) setupContext() error {
	if a.egl.BindAPI(egl.OPENGL_ES_API) != egl.TRUE {
		return a.eglFailed("eglBindAPI")
	}
	attribs := egl.Attribs(egl.CONTEXT_CLIENT_VERSION, 2)
	ctx := a.egl.CreateContext(a.State.Display, a.State.Config, egl.NoContext, &attribs[0])
	if ctx == egl.NoContext {
		return a.eglFailed("eglCreateContext")
	}
	a.State.Context = ctx
	if a.egl.MakeCurrent(a.State.Display, a.State.Surface, a.State.Surface, ctx) != egl.TRUE {
		return a.eglFailed("eglMakeCurrent")
	}
	if a.window != nil {
		if a.egl.SwapInterval(a.State.Display, 1) != egl.TRUE {
			return a.eglFailed("eglSwapInterval")
		}
	}
	return nil
}

func (a *App) initialiseBuffer() error {
	a.gl.GenBuffers(1, &a.State.VertexBuffer)
	a.gl.BindBuffer(gles.ARRAY_BUFFER, a.State.VertexBuffer)
	data := gles.BytesView(triangle[:])
	a.gl.BufferData(gles.ARRAY_BUFFER, gles.Sizeiptr(len(data)), unsafe.Pointer(&data[0]), gles.STATIC_DRAW)
	if err := a.glError("glBufferData"); err != nil {
		return err
	}
	prog, err := gles.CreateProgram(a.gl, vertexShader, fragmentShader, []string{"myVertex"})
	if err != nil {
		return err
	}
	a.State.Program = prog
	name := cstr.Must("transformationMatrix")
	a.matrixLoc = a.gl.GetUniformLocation(prog, name)
	cstr.KeepAlive(name)
	return a.glError("glLinkProgram")
}

// RenderScene clears the surface, draws the triangle and presents it. It
// must run on the OS thread the context is current on.
func (a *App) RenderScene() error {
	a.gl.ClearColor(gles.Float(clearColor[0]), gles.Float(clearColor[1]), gles.Float(clearColor[2]), gles.Float(clearColor[3]))
	a.gl.Clear(gles.COLOR_BUFFER_BIT)

	a.gl.UseProgram(a.State.Program)
	a.gl.UniformMatrix4fv(a.matrixLoc, 1, gles.FALSE, (*gles.Float)(unsafe.Pointer(&identity[0])))
	if err := a.glError("glUniformMatrix4fv"); err != nil {
		return err
	}
	a.gl.BindBuffer(gles.ARRAY_BUFFER, a.State.VertexBuffer)
	a.gl.EnableVertexAttribArray(vertexArray)
	a.gl.VertexAttribPointer(vertexArray, 3, gles.FLOAT, gles.FALSE, gles.Sizei(unsafe.Sizeof(triangle[0])), nil)
	if err := a.glError("glVertexAttribPointer"); err != nil {
		return err
	}
	a.gl.DrawArrays(gles.TRIANGLES, 0, gles.Sizei(len(triangle)))
	if err := a.glError("glDrawArrays"); err != nil {
		return err
	}
	if a.egl.SwapBuffers(a.State.Display, a.State.Surface) != egl.TRUE {
		return a.eglFailed("eglSwapBuffers")
	}
	a.frames++
	return nil
}

// release frees the GL objects and the EGL state. It tolerates partially
// initialized state.
func (a *App) release() {
	s := &a.State
	if s.VertexBuffer != 0 {
		a.gl.DeleteBuffers(1, &s.VertexBuffer)
		s.VertexBuffer = 0
	}
	if s.Program != 0 {
		a.gl.DeleteProgram(s.Program)
		s.Program = 0
	}
	if s.Display == egl.NoDisplay {
		return
	}
	a.egl.MakeCurrent(s.Display, egl.NoSurface, egl.NoSurface, egl.NoContext)
	if s.Surface != egl.NoSurface {
		a.egl.DestroySurface(s.Display, s.Surface)
	}
	if s.Context != egl.NoContext {
		a.egl.DestroyContext(s.Display, s.Context)
	}
	a.egl.Terminate(s.Display)
	a.egl.ReleaseThread()
	s.Display, s.Config, s.Context, s.Surface = egl.NoDisplay, egl.NoConfig, egl.NoContext, egl.NoSurface
}

// Run handles commands and renders while the App is initialized and
// animating. It blocks for the next command otherwise. Run returns when
// ctx is done, when cmds is closed or on the first failure, releasing
// everything before it does.
//
// EGL binds the context to an OS thread, so Run locks the calling
// goroutine to its thread for its whole duration. Callers driving Handle
// and RenderScene themselves must do the same.
func (a *App) Run(ctx context.Context, cmds <-chan Command) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer a.release()
	for {
		if !a.State.IsInitialised || !a.State.IsAnimating {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case cmd, ok := <-cmds:
				if !ok {
					return nil
				}
				if err := a.Handle(cmd); err != nil {
					return err
				}
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-cmds:
			if !ok {
				return nil
			}
			if err := a.Handle(cmd); err != nil {
				return err
			}
			continue
		default:
		}
		if err := a.RenderScene(); err != nil {
			a.fail(err)
			return err
		}
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

// Package egltest implements a minimal in-process EGL driver on top of
// bindtest, enough to exercise display, context and surface management.
package egltest

import (
	"sync"

	"github.com/pvrsdk/native/bind/bindtest"
	"github.com/pvrsdk/native/egl"
	"github.com/pvrsdk/native/internal/cstr"
)

// Display is the only display the driver knows.
const Display egl.Display = 0xd15

// Driver is a fake EGL implementation. Its methods are safe for concurrent
// use.
type Driver struct {
	Lib *bindtest.Library

	mu         sync.Mutex
	extensions map[egl.Display]*byte
	fail       map[string]egl.Int
	err        egl.Int
	calls      []string
	initCount  int
	next       uintptr
	contexts   map[egl.Context]bool
	surfaces   map[egl.Surface]bool
	current    egl.Context
	swaps      int
	threadID   func() int
	threads    map[int]bool
}

// New returns a driver exporting the core entry points used by clients and
// the EGL_KHR_image_base functions. extensions is reported for Display.
func New(extensions string) *Driver {
	d := &Driver{
		extensions: map[egl.Display]*byte{Display: cstr.Must(extensions)},
		fail:       make(map[string]egl.Int),
		contexts:   make(map[egl.Context]bool),
		surfaces:   make(map[egl.Surface]bool),
		next:       0x100,
	}
	d.Lib = bindtest.NewLibrary("libEGL.so.1", map[string]any{
		"eglGetDisplay":           d.getDisplay,
		"eglInitialize":           d.initialize,
		"eglTerminate":            d.terminate,
		"eglBindAPI":              d.bindAPI,
		"eglChooseConfig":         d.chooseConfig,
		"eglGetConfigAttrib":      d.getConfigAttrib,
		"eglCreateContext":        d.createContext,
		"eglDestroyContext":       d.destroyContext,
		"eglCreateWindowSurface":  d.createWindowSurface,
		"eglCreatePbufferSurface": d.createPbufferSurface,
		"eglDestroySurface":       d.destroySurface,
		"eglMakeCurrent":          d.makeCurrent,
		"eglSwapBuffers":          d.swapBuffers,
		"eglSwapInterval":         d.swapInterval,
		"eglQueryString":          d.queryString,
		"eglGetCurrentDisplay":    d.getCurrentDisplay,
		"eglGetError":             d.getError,
		"eglReleaseThread":        d.releaseThread,
		"eglGetProcAddress":       d.getProcAddress,
	})
	d.Lib.Define("eglCreateImageKHR", func(dpy egl.Display, ctx egl.Context, target egl.Enum, buf egl.ClientBuffer, attribs *egl.Int) egl.Image {
		return egl.Image(d.handle("eglCreateImageKHR"))
	})
	d.Lib.Define("eglDestroyImageKHR", func(dpy egl.Display, img egl.Image) egl.Boolean {
		return d.ok("eglDestroyImageKHR")
	})
	return d
}

// Fail makes every later call to the named function fail with code.
func (d *Driver) Fail(name string, code egl.Int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fail[name] = code
}

// SetExtensions replaces the extension string reported for dpy.
func (d *Driver) SetExtensions(dpy egl.Display, ext string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.extensions[dpy] = cstr.Must(ext)
}

// TrackThreads records id() on every later call. id is called on the
// calling thread and should return its OS thread identifier.
func (d *Driver) TrackThreads(id func() int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.threadID = id
	d.threads = make(map[int]bool)
}

// Threads returns the number of distinct threads seen since TrackThreads.
func (d *Driver) Threads() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.threads)
}

// Calls returns the names of the functions called so far, in order.
func (d *Driver) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

// Live reports the number of contexts and surfaces not yet destroyed.
func (d *Driver) Live() (contexts, surfaces int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.contexts), len(d.surfaces)
}

// Current returns the context made current last.
func (d *Driver) Current() egl.Context {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Initialized reports whether Display is initialized.
func (d *Driver) Initialized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initCount > 0
}

// Swaps counts successful eglSwapBuffers calls.
func (d *Driver) Swaps() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.swaps
}

// call records name and reports whether it should fail.
func (d *Driver) call(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, name)
	if d.threadID != nil {
		d.threads[d.threadID()] = true
	}
	if code, ok := d.fail[name]; ok {
		d.err = code
		return false
	}
	return true
}

func (d *Driver) ok(name string) egl.Boolean {
	if d.call(name) {
		return egl.TRUE
	}
	return egl.FALSE
}

func (d *Driver) handle(name string) uintptr {
	if !d.call(name) {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.next++
	return d.next
}

func (d *Driver) getDisplay(id egl.NativeDisplayType) egl.Display {
	if !d.call("eglGetDisplay") {
		return egl.NoDisplay
	}
	return Display
}

func (d *Driver) initialize(dpy egl.Display, major, minor *egl.Int) egl.Boolean {
	if !d.call("eglInitialize") {
		return egl.FALSE
	}
	if dpy != Display {
		d.setError(egl.BAD_DISPLAY)
		return egl.FALSE
	}
	d.mu.Lock()
	d.initCount++
	d.mu.Unlock()
	if major != nil {
		*major = 1
	}
	if minor != nil {
		*minor = 5
	}
	return egl.TRUE
}

func (d *Driver) terminate(dpy egl.Display) egl.Boolean {
	if !d.call("eglTerminate") {
		return egl.FALSE
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.initCount = 0
	clear(d.contexts)
	clear(d.surfaces)
	return egl.TRUE
}

func (d *Driver) bindAPI(api egl.Enum) egl.Boolean {
	return d.ok("eglBindAPI")
}

func (d *Driver) chooseConfig(dpy egl.Display, attribs *egl.Int, configs *egl.Config, size egl.Int, n *egl.Int) egl.Boolean {
	if !d.call("eglChooseConfig") {
		return egl.FALSE
	}
	if configs != nil && size > 0 {
		*configs = 1
	}
	if n != nil {
		*n = 1
	}
	return egl.TRUE
}

func (d *Driver) getConfigAttrib(dpy egl.Display, cfg egl.Config, attr egl.Int, v *egl.Int) egl.Boolean {
	if !d.call("eglGetConfigAttrib") {
		return egl.FALSE
	}
	switch attr {
	case egl.RED_SIZE, egl.GREEN_SIZE, egl.BLUE_SIZE, egl.ALPHA_SIZE:
		*v = 8
	case egl.NATIVE_VISUAL_ID:
		*v = 0x21
	default:
		*v = 0
	}
	return egl.TRUE
}

func (d *Driver) createContext(dpy egl.Display, cfg egl.Config, share egl.Context, attribs *egl.Int) egl.Context {
	h := egl.Context(d.handle("eglCreateContext"))
	if h != egl.NoContext {
		d.mu.Lock()
		d.contexts[h] = true
		d.mu.Unlock()
	}
	return h
}

func (d *Driver) destroyContext(dpy egl.Display, ctx egl.Context) egl.Boolean {
	if !d.call("eglDestroyContext") {
		return egl.FALSE
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.contexts[ctx] {
		d.err = egl.BAD_CONTEXT
		return egl.FALSE
	}
	delete(d.contexts, ctx)
	return egl.TRUE
}

func (d *Driver) newSurface(name string) egl.Surface {
	h := egl.Surface(d.handle(name))
	if h != egl.NoSurface {
		d.mu.Lock()
		d.surfaces[h] = true
		d.mu.Unlock()
	}
	return h
}

func (d *Driver) createWindowSurface(dpy egl.Display, cfg egl.Config, win egl.NativeWindowType, attribs *egl.Int) egl.Surface {
	return d.newSurface("eglCreateWindowSurface")
}

func (d *Driver) createPbufferSurface(dpy egl.Display, cfg egl.Config, attribs *egl.Int) egl.Surface {
	return d.newSurface("eglCreatePbufferSurface")
}

func (d *Driver) destroySurface(dpy egl.Display, s egl.Surface) egl.Boolean {
	if !d.call("eglDestroySurface") {
		return egl.FALSE
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.surfaces[s] {
		d.err = egl.BAD_SURFACE
		return egl.FALSE
	}
	delete(d.surfaces, s)
	return egl.TRUE
}

func (d *Driver) makeCurrent(dpy egl.Display, draw, read egl.Surface, ctx egl.Context) egl.Boolean {
	if !d.call("eglMakeCurrent") {
		return egl.FALSE
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = ctx
	return egl.TRUE
}

func (d *Driver) swapBuffers(dpy egl.Display, s egl.Surface) egl.Boolean {
	if !d.call("eglSwapBuffers") {
		return egl.FALSE
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.swaps++
	return egl.TRUE
}

func (d *Driver) swapInterval(dpy egl.Display, interval egl.Int) egl.Boolean {
	return d.ok("eglSwapInterval")
}

func (d *Driver) queryString(dpy egl.Display, name egl.Int) *byte {
	if !d.call("eglQueryString") {
		return nil
	}
	if name != egl.EXTENSIONS {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.extensions[dpy]
}

func (d *Driver) getCurrentDisplay() egl.Display {
	d.call("eglGetCurrentDisplay")
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == egl.NoContext {
		return egl.NoDisplay
	}
	return Display
}

func (d *Driver) getError() egl.Int {
	d.mu.Lock()
	defer d.mu.Unlock()
	code := d.err
	d.err = egl.SUCCESS
	if code == 0 {
		code = egl.SUCCESS
	}
	return code
}

func (d *Driver) setError(code egl.Int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = code
}

func (d *Driver) releaseThread() egl.Boolean {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = egl.NoContext
	return egl.TRUE
}

func (d *Driver) getProcAddress(name *byte) uintptr {
	return d.Lib.ProcAddress(cstr.GoString(name))
}

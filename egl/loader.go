// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/config"
	"github.com/pvrsdk/native/internal/cstr"
	"github.com/pvrsdk/native/internal/dl"
	"github.com/pvrsdk/native/internal/log"
)

// Loader resolves the EGL entry points of one library. Core functions are
// looked up in the library itself; extension functions are looked up through
// eglGetProcAddress.
type Loader struct {
	lib  *bind.Shared
	core *bind.Table[CoreID, Functions]
	ext  *bind.Table[ExtID, ExtFunctions]

	// extensions caches the extension string of the display current when
	// it was first queried.
	extensions atomic.Pointer[string]
}

// Option configures a Loader.
type Option func(*options)

type options struct {
	cfg  config.Config
	open func() (bind.Source, error)
	reg  bind.Registrar
	log  *zap.Logger
}

// WithConfig selects the library names and search paths.
func WithConfig(c config.Config) Option {
	return func(o *options) { o.cfg = c }
}

// WithSource replaces the library opener.
func WithSource(open func() (bind.Source, error)) Option {
	return func(o *options) { o.open = open }
}

func WithRegistrar(reg bind.Registrar) Option {
	return func(o *options) { o.reg = reg }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// NewLoader returns a loader. Nothing is opened until the first call that
// needs a function.
func NewLoader(opts ...Option) *Loader {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.open == nil {
		cfg := o.cfg
		o.open = func() (bind.Source, error) {
			lib, err := cfg.Open(dl.EGL)
			if err != nil {
				return nil, err
			}
			return lib, nil
		}
	}
	if o.log == nil {
		o.log = log.L()
	}
	topts := []bind.Option{bind.WithRegistrar(o.reg), bind.WithLogger(o.log)}
	l := &Loader{lib: bind.NewShared(o.open)}
	l.core = bind.NewTable[CoreID]("EGL", functionsNames, (*Functions).fields, l.lib.Open, topts...)
	l.ext = bind.NewTable[ExtID]("EGL extensions", extFunctionsNames, (*ExtFunctions).fields, l.procSource,
		append(topts, bind.Optional())...)
	return l
}

var defaultLoader = sync.OnceValue(func() *Loader {
	cfg, err := config.FromEnv()
	if err != nil {
		log.L().Warn("ignoring configuration", zap.Error(err))
	}
	return NewLoader(WithConfig(cfg))
})

// Default returns the process wide loader, configured from the
// environment.
func Default() *Loader {
	return defaultLoader()
}

// Core returns the EGL 1.0-1.5 functions.
func (l *Loader) Core() (*Functions, error) {
	return l.core.Load()
}

// CoreTable exposes the core table for Has, Require and Missing.
func (l *Loader) CoreTable() *bind.Table[CoreID, Functions] {
	return l.core
}

// Extensions returns the extension functions. A field is nil when the
// implementation does not export it.
func (l *Loader) Extensions() (*ExtFunctions, error) {
	return l.ext.Load()
}

func (l *Loader) ExtensionTable() *bind.Table[ExtID, ExtFunctions] {
	return l.ext
}

// ResetExtensions resolves the extension functions again and forgets the
// cached extension string. Call it after the display has been
// reinitialized.
func (l *Loader) ResetExtensions() (*ExtFunctions, error) {
	l.extensions.Store(nil)
	return l.ext.Reset()
}

// ProcAddress returns eglGetProcAddress(name), or 0 when EGL is not
// available.
func (l *Loader) ProcAddress(name string) uintptr {
	f, err := l.core.Load()
	if err != nil || f.GetProcAddress == nil {
		return 0
	}
	p := cstr.Must(name)
	addr := f.GetProcAddress(p)
	cstr.KeepAlive(p)
	return addr
}

func (l *Loader) procSource() (bind.Source, error) {
	if err := l.core.Require(CoreGetProcAddress); err != nil {
		return nil, err
	}
	return bind.ProcAddress(l.ProcAddress), nil
}

// ExtensionSupported reports whether the display current on the calling
// thread supports the named extension. It is false while no display is
// current. The extension string is queried once a display is current and
// cached until ResetExtensions.
func (l *Loader) ExtensionSupported(name string) bool {
	s := l.extensions.Load()
	if s == nil {
		f, err := l.core.Load()
		if err != nil || f.GetCurrentDisplay == nil {
			return false
		}
		// EGL_NO_DISPLAY yields the client extensions, not the display's.
		dpy := f.GetCurrentDisplay()
		if dpy == NoDisplay {
			return false
		}
		ext, ok := l.queryExtensions(f, dpy)
		if !ok {
			return false
		}
		l.extensions.CompareAndSwap(nil, &ext)
		s = l.extensions.Load()
	}
	return bind.ExtensionSupported(*s, name)
}

// DisplayExtensionSupported is like ExtensionSupported for an explicit
// display, without caching.
func (l *Loader) DisplayExtensionSupported(dpy Display, name string) bool {
	f, err := l.core.Load()
	if err != nil {
		return false
	}
	ext, ok := l.queryExtensions(f, dpy)
	return ok && bind.ExtensionSupported(ext, name)
}

func (l *Loader) queryExtensions(f *Functions, dpy Display) (string, bool) {
	if f.QueryString == nil {
		return "", false
	}
	p := f.QueryString(dpy, EXTENSIONS)
	if p == nil {
		return "", false
	}
	return cstr.GoString(p), true
}

// LastError returns the error of the last EGL call on the calling thread.
func (l *Loader) LastError() error {
	f, err := l.core.Load()
	if err != nil {
		return err
	}
	if f.GetError == nil {
		return l.core.Require(CoreGetError)
	}
	return Error(f.GetError())
}

// Close unloads every table and releases the library. The next call that
// needs a table reopens the library. Functions obtained earlier must not be
// called afterwards, and Close must not run concurrently with other
// methods.
func (l *Loader) Close() error {
	l.core.Unload()
	l.ext.Unload()
	l.extensions.Store(nil)
	return l.lib.Close()
}

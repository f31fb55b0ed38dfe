// SPDX-License-Identifier: Unlicense OR MIT

package gles

import (
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/config"
	"github.com/pvrsdk/native/egl"
	"github.com/pvrsdk/native/internal/cstr"
	"github.com/pvrsdk/native/internal/dl"
	"github.com/pvrsdk/native/internal/log"
)

// Loader resolves the OpenGL ES entry points. The four version tiers share
// one library handle, opened by the first tier loaded. Extension functions
// are resolved through eglGetProcAddress.
type Loader struct {
	lib  *bind.Shared
	es20 *bind.Table[ES20ID, Functions20]
	es30 *bind.Table[ES30ID, Functions30]
	es31 *bind.Table[ES31ID, Functions31]
	es32 *bind.Table[ES32ID, Functions32]
	ext  *bind.Table[ExtID, ExtFunctions]

	procAddress func(string) uintptr
	extensions  atomic.Pointer[string]
}

// Option configures a Loader.
type Option func(*options)

type options struct {
	cfg         config.Config
	open        func() (bind.Source, error)
	procAddress func(string) uintptr
	reg         bind.Registrar
	log         *zap.Logger
}

// WithConfig selects the library names and search paths.
func WithConfig(c config.Config) Option {
	return func(o *options) { o.cfg = c }
}

// WithSource replaces the library opener.
func WithSource(open func() (bind.Source, error)) Option {
	return func(o *options) { o.open = open }
}

// WithProcAddress replaces the resolver of extension functions, by default
// egl.Default().ProcAddress.
func WithProcAddress(get func(name string) uintptr) Option {
	return func(o *options) { o.procAddress = get }
}

// WithEGL resolves extension functions through l.
func WithEGL(l *egl.Loader) Option {
	return WithProcAddress(l.ProcAddress)
}

func WithRegistrar(reg bind.Registrar) Option {
	return func(o *options) { o.reg = reg }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// NewLoader returns a loader. Nothing is opened until a tier is loaded.
func NewLoader(opts ...Option) *Loader {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.open == nil {
		cfg := o.cfg
		o.open = func() (bind.Source, error) {
			lib, err := cfg.Open(dl.GLES)
			if err != nil {
				return nil, err
			}
			return lib, nil
		}
	}
	if o.procAddress == nil {
		o.procAddress = func(name string) uintptr {
			return egl.Default().ProcAddress(name)
		}
	}
	if o.log == nil {
		o.log = log.L()
	}
	topts := []bind.Option{bind.WithRegistrar(o.reg), bind.WithLogger(o.log)}
	// Later tiers are absent from ES 2.0 drivers and are not worth a warning.
	later := append(topts[:len(topts):len(topts)], bind.Optional())
	l := &Loader{lib: bind.NewShared(o.open), procAddress: o.procAddress}
	l.es20 = bind.NewTable[ES20ID]("GLES 2.0", functions20Names, (*Functions20).fields, l.lib.Open, topts...)
	l.es30 = bind.NewTable[ES30ID]("GLES 3.0", functions30Names, (*Functions30).fields, l.lib.Open, later...)
	l.es31 = bind.NewTable[ES31ID]("GLES 3.1", functions31Names, (*Functions31).fields, l.lib.Open, later...)
	l.es32 = bind.NewTable[ES32ID]("GLES 3.2", functions32Names, (*Functions32).fields, l.lib.Open, later...)
	l.ext = bind.NewTable[ExtID]("GLES extensions", extFunctionsNames, (*ExtFunctions).fields, l.procSource, later...)
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

func (l *Loader) ES20() (*Functions20, error) { return l.es20.Load() }
func (l *Loader) ES30() (*Functions30, error) { return l.es30.Load() }
func (l *Loader) ES31() (*Functions31, error) { return l.es31.Load() }
func (l *Loader) ES32() (*Functions32, error) { return l.es32.Load() }

func (l *Loader) ES20Table() *bind.Table[ES20ID, Functions20] { return l.es20 }
func (l *Loader) ES30Table() *bind.Table[ES30ID, Functions30] { return l.es30 }
func (l *Loader) ES31Table() *bind.Table[ES31ID, Functions31] { return l.es31 }
func (l *Loader) ES32Table() *bind.Table[ES32ID, Functions32] { return l.es32 }

// Extensions returns the extension functions. A field is nil when the
// implementation does not export it.
func (l *Loader) Extensions() (*ExtFunctions, error) {
	return l.ext.Load()
}

func (l *Loader) ExtensionTable() *bind.Table[ExtID, ExtFunctions] {
	return l.ext
}

// ResetExtensions resolves the extension functions again and forgets the
// cached extension string. Call it after switching to a context of another
// implementation.
func (l *Loader) ResetExtensions() (*ExtFunctions, error) {
	l.extensions.Store(nil)
	return l.ext.Reset()
}

func (l *Loader) procSource() (bind.Source, error) {
	return bind.ProcAddress(l.procAddress), nil
}

// ExtensionSupported reports whether the current context supports the named
// extension. The extension list is read once and cached until
// ResetExtensions.
func (l *Loader) ExtensionSupported(name string) bool {
	s := l.extensions.Load()
	if s == nil {
		ext, ok := l.queryExtensions()
		if !ok {
			return false
		}
		l.extensions.CompareAndSwap(nil, &ext)
		s = l.extensions.Load()
	}
	return bind.ExtensionSupported(*s, name)
}

// queryExtensions reads GL_EXTENSIONS, falling back to glGetStringi on
// contexts that only report extensions by index.
func (l *Loader) queryExtensions() (string, bool) {
	f, err := l.es20.Load()
	if err != nil || f.GetString == nil {
		return "", false
	}
	if p := f.GetString(EXTENSIONS); p != nil {
		return cstr.GoString(p), true
	}
	f30, err := l.es30.Load()
	if err != nil || f30.GetStringi == nil || f.GetIntegerv == nil {
		return "", false
	}
	var n Int
	f.GetIntegerv(NUM_EXTENSIONS, &n)
	n = max(n, 0)
	exts := make([]string, 0, n)
	for i := Int(0); i < n; i++ {
		if p := f30.GetStringi(EXTENSIONS, Uint(i)); p != nil {
			exts = append(exts, cstr.GoString(p))
		}
	}
	return strings.Join(exts, " "), true
}

// Version returns the version of the current context.
func (l *Loader) Version() ([2]int, error) {
	f, err := l.es20.Load()
	if err != nil {
		return [2]int{}, err
	}
	if err := l.es20.Require(ES20GetString); err != nil {
		return [2]int{}, err
	}
	return ParseVersion(GoString(f.GetString(VERSION)))
}

// LastError returns the error of the last GL call in the current context.
func (l *Loader) LastError() error {
	f, err := l.es20.Load()
	if err != nil {
		return err
	}
	if err := l.es20.Require(ES20GetError); err != nil {
		return err
	}
	return Error(f.GetError())
}

// Close unloads every tier and releases the library. The next call that
// needs a tier reopens the library. Functions obtained earlier must not be
// called afterwards, and Close must not run concurrently with other
// methods.
func (l *Loader) Close() error {
	l.es20.Unload()
	l.es30.Unload()
	l.es31.Unload()
	l.es32.Unload()
	l.ext.Unload()
	l.extensions.Store(nil)
	return l.lib.Close()
}

// SPDX-License-Identifier: Unlicense OR MIT

// Package glsc2 binds OpenGL SC 2.0 at run time from libGLSCv2.
package glsc2

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

//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/gl.xml --api glsc2 --version 2.0 --type Functions --id FuncID --prefix gl --out functions.go

// Loader resolves the OpenGL SC 2.0 entry points.
type Loader struct {
	lib        *bind.Shared
	table      *bind.Table[FuncID, Functions]
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

func WithConfig(c config.Config) Option {
	return func(o *options) { o.cfg = c }
}

func WithSource(open func() (bind.Source, error)) Option {
	return func(o *options) { o.open = open }
}

func WithRegistrar(reg bind.Registrar) Option {
	return func(o *options) { o.reg = reg }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

func NewLoader(opts ...Option) *Loader {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.open == nil {
		cfg := o.cfg
		o.open = func() (bind.Source, error) {
			lib, err := cfg.Open(dl.GLSC2)
			if err != nil {
				return nil, err
			}
			return lib, nil
		}
	}
	if o.log == nil {
		o.log = log.L()
	}
	l := &Loader{lib: bind.NewShared(o.open)}
	l.table = bind.NewTable[FuncID]("GLSC 2.0", functionsNames, (*Functions).fields, l.lib.Open,
		bind.WithRegistrar(o.reg), bind.WithLogger(o.log))
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

// Functions returns the OpenGL SC 2.0 functions.
func (l *Loader) Functions() (*Functions, error) {
	return l.table.Load()
}

func (l *Loader) Table() *bind.Table[FuncID, Functions] {
	return l.table
}

// ExtensionSupported reports whether the current context lists the named
// extension in GL_EXTENSIONS. The list is read once.
func (l *Loader) ExtensionSupported(name string) bool {
	s := l.extensions.Load()
	if s == nil {
		f, err := l.table.Load()
		if err != nil || f.GetString == nil {
			return false
		}
		p := f.GetString(EXTENSIONS)
		if p == nil {
			return false
		}
		ext := cstr.GoString(p)
		l.extensions.CompareAndSwap(nil, &ext)
		s = l.extensions.Load()
	}
	return bind.ExtensionSupported(*s, name)
}

// ResetExtensions forgets the cached extension list.
func (l *Loader) ResetExtensions() {
	l.extensions.Store(nil)
}

// LastError returns the error of the last GL call in the current context.
func (l *Loader) LastError() error {
	f, err := l.table.Load()
	if err != nil {
		return err
	}
	if err := l.table.Require(FuncGetError); err != nil {
		return err
	}
	return Error(f.GetError())
}

// Close unloads the table and releases the library; the next Load reopens
// it. Close must not run concurrently with other methods.
func (l *Loader) Close() error {
	l.table.Unload()
	l.extensions.Store(nil)
	return l.lib.Close()
}

// SPDX-License-Identifier: Unlicense OR MIT

// Package ocl binds OpenCL 1.0 through 2.2 at run time from the ICD loader
// or, failing that, the PowerVR driver library.
//
// The functions are split in three tables sharing one library handle: the
// 1.x core, the 2.x additions and the cl_khr_gl_sharing entry points. Only
// the 1.x core is expected to be complete.
package ocl

import (
	"fmt"
	"strings"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/config"
	"github.com/pvrsdk/native/internal/cstr"
	"github.com/pvrsdk/native/internal/dl"
	"github.com/pvrsdk/native/internal/log"
)

//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/cl.xml --api opencl --version 1.0-1.2 --type Functions --id FuncID --prefix cl --out functions.go
//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/cl.xml --api opencl --version 2.0-2.2 --type Functions20 --id CL20ID --prefix cl --out functions20.go
//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/cl.xml --api opencl --extensions --filter sharing_commands.txt --type SharingFunctions --id SharingID --prefix cl --out sharing_functions.go

// Loader resolves the OpenCL entry points.
type Loader struct {
	lib     *bind.Shared
	core    *bind.Table[FuncID, Functions]
	cl20    *bind.Table[CL20ID, Functions20]
	sharing *bind.Table[SharingID, SharingFunctions]
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

// NewLoader returns a loader. Nothing is opened until a table is loaded.
func NewLoader(opts ...Option) *Loader {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.open == nil {
		cfg := o.cfg
		o.open = func() (bind.Source, error) {
			lib, err := cfg.Open(dl.OpenCL)
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
	optional := append(topts[:len(topts):len(topts)], bind.Optional())
	l := &Loader{lib: bind.NewShared(o.open)}
	l.core = bind.NewTable[FuncID]("OpenCL", functionsNames, (*Functions).fields, l.lib.Open, topts...)
	l.cl20 = bind.NewTable[CL20ID]("OpenCL 2.x", functions20Names, (*Functions20).fields, l.lib.Open, optional...)
	l.sharing = bind.NewTable[SharingID]("OpenCL GL sharing", sharingFunctionsNames, (*SharingFunctions).fields, l.lib.Open, optional...)
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

// Functions returns the OpenCL 1.0-1.2 functions.
func (l *Loader) Functions() (*Functions, error) { return l.core.Load() }

// Functions20 returns the functions added by OpenCL 2.0-2.2. They are nil
// on 1.x platforms.
func (l *Loader) Functions20() (*Functions20, error) { return l.cl20.Load() }

// Sharing returns the cl_khr_gl_sharing functions.
func (l *Loader) Sharing() (*SharingFunctions, error) { return l.sharing.Load() }

func (l *Loader) Table() *bind.Table[FuncID, Functions]                  { return l.core }
func (l *Loader) Table20() *bind.Table[CL20ID, Functions20]              { return l.cl20 }
func (l *Loader) SharingTable() *bind.Table[SharingID, SharingFunctions] { return l.sharing }

// Platforms returns the available platforms. An ICD loader without any
// installed driver reports no platforms and no error.
func (l *Loader) Platforms() ([]PlatformID, error) {
	f, err := l.core.Load()
	if err != nil {
		return nil, err
	}
	if err := l.core.Require(FuncGetPlatformIDs); err != nil {
		return nil, err
	}
	var n Uint
	switch code := f.GetPlatformIDs(0, nil, &n); code {
	case SUCCESS:
	case PLATFORM_NOT_FOUND_KHR:
		return nil, nil
	default:
		return nil, fmt.Errorf("clGetPlatformIDs failed: %w", Error(code))
	}
	if n == 0 {
		return nil, nil
	}
	ids := make([]PlatformID, n)
	if code := f.GetPlatformIDs(n, &ids[0], &n); code != SUCCESS {
		return nil, fmt.Errorf("clGetPlatformIDs failed: %w", Error(code))
	}
	return ids[:n], nil
}

// PlatformInfo returns a string parameter of p, such as PLATFORM_NAME.
func (l *Loader) PlatformInfo(p PlatformID, param Uint) (string, error) {
	f, err := l.core.Load()
	if err != nil {
		return "", err
	}
	if err := l.core.Require(FuncGetPlatformInfo); err != nil {
		return "", err
	}
	var size uintptr
	if code := f.GetPlatformInfo(p, param, 0, nil, &size); code != SUCCESS {
		return "", fmt.Errorf("clGetPlatformInfo(0x%x) failed: %w", uint32(param), Error(code))
	}
	if size == 0 {
		return "", nil
	}
	buf := make([]byte, size)
	if code := f.GetPlatformInfo(p, param, size, unsafe.Pointer(&buf[0]), nil); code != SUCCESS {
		return "", fmt.Errorf("clGetPlatformInfo(0x%x) failed: %w", uint32(param), Error(code))
	}
	return strings.TrimRight(string(buf), "\x00"), nil
}

// ExtensionSupported reports whether p lists the named extension.
func (l *Loader) ExtensionSupported(p PlatformID, name string) bool {
	ext, err := l.PlatformInfo(p, PLATFORM_EXTENSIONS)
	return err == nil && bind.ExtensionSupported(ext, name)
}

// ExtensionAddress returns the address of the extension function name on
// p, or 0. Platforms older than 1.2 are asked through the deprecated
// clGetExtensionFunctionAddress.
func (l *Loader) ExtensionAddress(p PlatformID, name string) uintptr {
	f, err := l.core.Load()
	if err != nil {
		return 0
	}
	s := cstr.Must(name)
	defer cstr.KeepAlive(s)
	switch {
	case f.GetExtensionFunctionAddressForPlatform != nil:
		return uintptr(f.GetExtensionFunctionAddressForPlatform(p, s))
	case f.GetExtensionFunctionAddress != nil:
		return uintptr(f.GetExtensionFunctionAddress(s))
	}
	return 0
}

// Close unloads every table and releases the library. The next call that
// needs a table reopens it. Close must not run concurrently with other
// methods.
func (l *Loader) Close() error {
	l.core.Unload()
	l.cl20.Unload()
	l.sharing.Unload()
	return l.lib.Close()
}

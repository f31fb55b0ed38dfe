// SPDX-License-Identifier: Unlicense OR MIT

// Package vk binds the Vulkan loader at run time.
//
// Only vkGetInstanceProcAddr is looked up in the library. Every other entry
// point is resolved through it, at global level before an instance exists,
// then per instance with NewInstanceBindings and per device with
// NewDeviceBindings. Each level is resolved in one pass into a struct of
// functions that is then passed around by value.
package vk

import (
	"slices"

	"go.uber.org/zap"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/config"
	"github.com/pvrsdk/native/internal/cstr"
	"github.com/pvrsdk/native/internal/dl"
	"github.com/pvrsdk/native/internal/log"
)

//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/vk.xml --api vulkan --level global --filter global_commands.txt --type Bindings --prefix vk --out bindings.go
//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/vk.xml --api vulkan --level instance --filter instance_commands.txt --type InstanceBindings --prefix vk --out instance_bindings.go
//go:generate go run ../cmd/glgen --registry $KHRONOS_REGISTRY/vk.xml --api vulkan --level device --filter device_commands.txt --type DeviceBindings --prefix vk --out device_bindings.go

// Option configures loading.
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

func newOptions(opts []Option) options {
	o := options{reg: bind.RegisterFunc}
	for _, opt := range opts {
		opt(&o)
	}
	if o.open == nil {
		cfg := o.cfg
		o.open = func() (bind.Source, error) {
			lib, err := cfg.Open(dl.Vulkan)
			if err != nil {
				return nil, err
			}
			return lib, nil
		}
	}
	if o.reg == nil {
		o.reg = bind.RegisterFunc
	}
	if o.log == nil {
		o.log = log.L()
	}
	o.log = o.log.With(zap.String("tier", "Vulkan"))
	return o
}

// Loader owns the Vulkan library handle.
type Loader struct {
	lib *bind.Shared
	o   options
}

func NewLoader(opts ...Option) *Loader {
	o := newOptions(opts)
	return &Loader{lib: bind.NewShared(o.open), o: o}
}

// Bindings opens the library if needed and resolves the global entry
// points. The returned error is a *bind.LibraryError when the library is
// missing and a *bind.SymbolError when a required entry point is;
// vkEnumerateInstanceVersion is absent from Vulkan 1.0 loaders and is not
// required.
func (l *Loader) Bindings() (Bindings, error) {
	var b Bindings
	src, err := l.lib.Open()
	if err != nil {
		l.o.log.Error("failed to open library", zap.Error(err))
		return b, &bind.LibraryError{Tier: "Vulkan", Err: err}
	}
	if lib, ok := src.(bind.Library); ok {
		l.o.log.Info("library loaded", zap.String("library", lib.Name()))
	}
	addr, err := src.Lookup("vkGetInstanceProcAddr")
	if err != nil || addr == 0 {
		return b, &bind.SymbolError{Tier: "Vulkan", Names: []string{"vkGetInstanceProcAddr"}}
	}
	l.o.reg(&b.GetInstanceProcAddr, addr)

	gipa := bind.SourceFunc(func(name string) (uintptr, error) {
		if name == "vkGetInstanceProcAddr" {
			return addr, nil
		}
		return instanceProc(b.GetInstanceProcAddr, 0).Lookup(name)
	})
	_, missing := bind.Fill(bindingsNames, b.fields(), gipa, l.o.reg)
	var required []string
	for _, name := range missing {
		if name == "vkEnumerateInstanceVersion" {
			l.o.log.Debug("entry point not available", zap.String("symbol", name))
			continue
		}
		l.o.log.Warn("entry point not found", zap.String("symbol", name))
		required = append(required, name)
	}
	if len(required) > 0 {
		return b, &bind.SymbolError{Tier: "Vulkan", Names: required}
	}
	return b, nil
}

// Close releases the library. Bindings obtained earlier must not be used
// afterwards.
func (l *Loader) Close() error {
	return l.lib.Close()
}

// LoadBindings resolves the global entry points from a library that stays
// open for the life of the process.
func LoadBindings(opts ...Option) (Bindings, error) {
	return NewLoader(opts...).Bindings()
}

// NewInstanceBindings resolves the instance level entry points of instance.
// It returns the names that could not be resolved, which is expected for
// extensions the instance was not created with.
func NewInstanceBindings(b Bindings, instance Instance, opts ...Option) (InstanceBindings, []string) {
	var ib InstanceBindings
	if b.GetInstanceProcAddr == nil {
		return ib, append([]string(nil), instanceBindingsNames...)
	}
	o := newOptions(opts)
	_, missing := bind.Fill(instanceBindingsNames, ib.fields(), instanceProc(b.GetInstanceProcAddr, instance), o.reg)
	o.log.Debug("instance bindings resolved",
		zap.Int("resolved", len(instanceBindingsNames)-len(missing)),
		zap.Int("missing", len(missing)))
	return ib, missing
}

// NewDeviceBindings resolves the device level entry points of device
// through vkGetDeviceProcAddr, skipping the loader's dispatch.
func NewDeviceBindings(ib InstanceBindings, device Device, opts ...Option) (DeviceBindings, []string) {
	var db DeviceBindings
	if ib.GetDeviceProcAddr == nil {
		return db, append([]string(nil), deviceBindingsNames...)
	}
	o := newOptions(opts)
	get := ib.GetDeviceProcAddr
	src := bind.ProcAddress(func(name string) uintptr {
		p := cstr.Must(name)
		addr := get(device, p)
		cstr.KeepAlive(p)
		return addr
	})
	_, missing := bind.Fill(deviceBindingsNames, db.fields(), src, o.reg)
	o.log.Debug("device bindings resolved",
		zap.Int("resolved", len(deviceBindingsNames)-len(missing)),
		zap.Int("missing", len(missing)))
	return db, missing
}

func instanceProc(get func(Instance, *byte) uintptr, instance Instance) bind.Source {
	return bind.ProcAddress(func(name string) uintptr {
		p := cstr.Must(name)
		addr := get(instance, p)
		cstr.KeepAlive(p)
		return addr
	})
}

// InstanceVersion returns the version of the instance level functionality,
// 1.0 for loaders without vkEnumerateInstanceVersion.
func (b *Bindings) InstanceVersion() (Version, error) {
	if b.EnumerateInstanceVersion == nil {
		return ParseAPIVersion(APIVersion10), nil
	}
	var v uint32
	if err := b.EnumerateInstanceVersion(&v).Err(); err != nil {
		return Version{}, err
	}
	return ParseAPIVersion(v), nil
}

// GlobalCommands returns the names of the entry points in Bindings.
func GlobalCommands() []string {
	return slices.Clone(bindingsNames)
}

// InstanceCommands returns the names of the entry points in
// InstanceBindings.
func InstanceCommands() []string {
	return slices.Clone(instanceBindingsNames)
}

// DeviceCommands returns the names of the entry points in DeviceBindings.
func DeviceCommands() []string {
	return slices.Clone(deviceBindingsNames)
}

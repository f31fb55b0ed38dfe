// SPDX-License-Identifier: Unlicense OR MIT

// Package bindtest provides fake native libraries backed by Go functions,
// for testing code built on package bind without loading a driver.
package bindtest

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/pvrsdk/native/bind"
)

var (
	registryMu sync.Mutex
	nextAddr   uintptr = 0x1000
	registry           = map[uintptr]any{}
)

func newAddr(fn any) uintptr {
	registryMu.Lock()
	defer registryMu.Unlock()
	nextAddr += 0x10
	registry[nextAddr] = fn
	return nextAddr
}

// Register is a bind.Registrar for addresses handed out by a Library. It
// panics if the Go function defined for addr does not have exactly the
// type of the variable fptr points to.
func Register(fptr any, addr uintptr) {
	registryMu.Lock()
	fn, ok := registry[addr]
	registryMu.Unlock()
	if !ok {
		panic(fmt.Sprintf("bindtest: no function at %#x", addr))
	}
	dst := reflect.ValueOf(fptr)
	if dst.Kind() != reflect.Pointer || dst.Elem().Kind() != reflect.Func {
		panic(fmt.Sprintf("bindtest: cannot bind into %T", fptr))
	}
	src := reflect.ValueOf(fn)
	if src.Type() != dst.Elem().Type() {
		panic(fmt.Sprintf("bindtest: %v bound to a %v", src.Type(), dst.Elem().Type()))
	}
	dst.Elem().Set(src)
}

// Library is a fake shared library. The zero value is not usable; call
// NewLibrary.
type Library struct {
	name string

	mu      sync.Mutex
	syms    map[string]uintptr
	lookups int
	opens   int
	closed  bool
}

// NewLibrary returns a library exporting fns under their map keys.
func NewLibrary(name string, fns map[string]any) *Library {
	l := &Library{name: name, syms: make(map[string]uintptr)}
	for sym, fn := range fns {
		l.Define(sym, fn)
	}
	return l
}

func (l *Library) Name() string {
	return l.name
}

func (l *Library) Lookup(name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lookups++
	if addr, ok := l.syms[name]; ok {
		return addr, nil
	}
	return 0, fmt.Errorf("%s: %s: %w", l.name, name, bind.ErrSymbolNotFound)
}

func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}

// Define exports fn as name. Redefining a name gives it a new address, the
// way a reloaded library would.
func (l *Library) Define(name string, fn any) {
	addr := newAddr(fn)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.syms[name] = addr
}

// Remove stops exporting name.
func (l *Library) Remove(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.syms, name)
}

// Addr returns the address name is exported at, or 0.
func (l *Library) Addr(name string) uintptr {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.syms[name]
}

// ProcAddress resolves name like eglGetProcAddress would, returning 0 for
// unknown names.
func (l *Library) ProcAddress(name string) uintptr {
	addr, _ := l.Lookup(name)
	return addr
}

// Lookups counts Lookup calls.
func (l *Library) Lookups() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lookups
}

// Opens counts calls to the function returned by Opener.
func (l *Library) Opens() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.opens
}

// Closed reports whether Close was called since the last open.
func (l *Library) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

// Opener returns an open function for bind.NewTable that yields l.
func (l *Library) Opener() func() (bind.Source, error) {
	return func() (bind.Source, error) {
		l.mu.Lock()
		l.opens++
		l.closed = false
		l.mu.Unlock()
		return l, nil
	}
}

// ErrNoLibrary is returned by Missing.
var ErrNoLibrary = errors.New("bindtest: no such library")

// Missing returns an open function that always fails, like a library that
// is not installed.
func Missing(name string) func() (bind.Source, error) {
	return func() (bind.Source, error) {
		return nil, fmt.Errorf("%s: %w", name, ErrNoLibrary)
	}
}

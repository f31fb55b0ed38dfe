// SPDX-License-Identifier: Unlicense OR MIT

/*
Package bind implements the lazily resolved function tables behind the EGL,
OpenGL ES, OpenGL SC and Vulkan bindings.

A Table maps a dense identifier to a native entry point. The first Load
opens the table's Source once, looks every name up in identifier order and
binds the results into a struct of typed Go functions. Later loads return
the same immutable snapshot. A missing library or symbol never panics: the
affected fields stay nil and Resolve, Require and Load report the failure so
callers can check before forwarding a call.
*/
package bind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ebitengine/purego"
)

var (
	// ErrLibraryNotFound is matched by every error caused by a shared
	// library that could not be opened.
	ErrLibraryNotFound = errors.New("library not found")
	// ErrSymbolNotFound is matched by every error caused by an entry point
	// missing from an opened library.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// Source resolves symbol names to native addresses.
type Source interface {
	Lookup(name string) (uintptr, error)
}

// Library is a Source backed by an opened shared library.
type Library interface {
	Source
	Name() string
	Close() error
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(name string) (uintptr, error)

func (f SourceFunc) Lookup(name string) (uintptr, error) {
	return f(name)
}

// ProcAddress adapts a resolver such as eglGetProcAddress or
// vkGetInstanceProcAddr, which report unknown names with a zero address.
func ProcAddress(get func(name string) uintptr) Source {
	return SourceFunc(func(name string) (uintptr, error) {
		if addr := get(name); addr != 0 {
			return addr, nil
		}
		return 0, fmt.Errorf("%s: %w", name, ErrSymbolNotFound)
	})
}

// Registrar binds the function variable pointed to by fptr to the native
// function at addr.
type Registrar func(fptr any, addr uintptr)

// RegisterFunc is the production Registrar.
func RegisterFunc(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}

// LibraryError reports a table whose library could not be opened.
type LibraryError struct {
	Tier string
	Err  error
}

func (e *LibraryError) Error() string {
	return fmt.Sprintf("%s: failed to open library: %v", e.Tier, e.Err)
}

func (e *LibraryError) Unwrap() []error {
	return []error{ErrLibraryNotFound, e.Err}
}

// SymbolError lists entry points that a table could not resolve.
type SymbolError struct {
	Tier  string
	Names []string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Tier, ErrSymbolNotFound, strings.Join(e.Names, ", "))
}

func (e *SymbolError) Unwrap() error {
	return ErrSymbolNotFound
}

// Fill looks up every name in src and binds the hits into the matching
// field of fields with reg. It returns the resolved addresses, indexed like
// names, and the names that could not be resolved. Fields of missing names
// are left untouched.
func Fill(names []string, fields []any, src Source, reg Registrar) (slots []uintptr, missing []string) {
	if len(names) != len(fields) {
		panic(fmt.Sprintf("bind: %d names for %d fields", len(names), len(fields)))
	}
	slots = make([]uintptr, len(names))
	for i, name := range names {
		addr, err := src.Lookup(name)
		if err != nil || addr == 0 {
			missing = append(missing, name)
			continue
		}
		slots[i] = addr
		reg(fields[i], addr)
	}
	return slots, missing
}

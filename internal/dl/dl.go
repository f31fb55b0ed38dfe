// SPDX-License-Identifier: Unlicense OR MIT

// Package dl locates and opens the native graphics libraries.
package dl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pvrsdk/native/bind"
)

// API identifies a family of native libraries.
type API int

const (
	EGL API = iota
	GLES
	GLSC2
	Vulkan
	OpenCL
)

func (a API) String() string {
	switch a {
	case EGL:
		return "egl"
	case GLES:
		return "gles"
	case GLSC2:
		return "glsc2"
	case Vulkan:
		return "vulkan"
	case OpenCL:
		return "opencl"
	default:
		return fmt.Sprintf("API(%d)", int(a))
	}
}

// APIs lists every supported API.
var APIs = []API{EGL, GLES, GLSC2, Vulkan, OpenCL}

// Candidates returns the library names tried for api on goos, in order.
func Candidates(api API, goos string) []string {
	switch goos {
	case "windows":
		switch api {
		case EGL:
			return []string{"libEGL.dll"}
		case GLES:
			return []string{"libGLESv2.dll"}
		case GLSC2:
			return []string{"libGLSCv2.dll"}
		case Vulkan:
			return []string{"vulkan-1.dll"}
		case OpenCL:
			return []string{"OpenCL.dll"}
		}
	case "darwin", "ios":
		switch api {
		case EGL:
			return []string{"libEGL.dylib"}
		case GLES:
			return []string{"libGLESv2.dylib"}
		case GLSC2:
			return []string{"libGLSCv2.dylib"}
		case Vulkan:
			return []string{"libvulkan.dylib", "libvulkan.1.dylib", "libMoltenVK.dylib"}
		case OpenCL:
			return []string{"/System/Library/Frameworks/OpenCL.framework/OpenCL"}
		}
	default:
		switch api {
		case EGL:
			return []string{"libEGL.so", "libEGL.so.1"}
		case GLES:
			return []string{"libGLESv2.so", "libGLESv2.so.2"}
		case GLSC2:
			return []string{"libGLSCv2.so"}
		case Vulkan:
			return []string{"libvulkan.so.1", "libvulkan.so"}
		case OpenCL:
			// libPVROCL is the PowerVR driver itself, for systems without
			// an ICD loader.
			return []string{"libOpenCL.so", "libOpenCL.so.1", "libPVROCL.so"}
		}
	}
	return nil
}

// SearchPaths returns the directories searched after the bare names failed
// to load. getenv is usually os.Getenv.
func SearchPaths(api API, goos string, getenv func(string) string) []string {
	var paths []string
	if api == Vulkan {
		if sdk := getenv("VULKAN_SDK"); sdk != "" {
			dir := "lib"
			if goos == "windows" {
				dir = "Bin"
			}
			paths = append(paths, filepath.Join(sdk, dir))
		}
	}
	switch goos {
	case "linux", "freebsd", "netbsd":
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/lib64",
			"/usr/lib",
			"/usr/local/lib",
		)
	case "android":
		paths = append(paths, "/system/lib64", "/system/vendor/lib64", "/system/lib", "/system/vendor/lib")
	case "darwin":
		paths = append(paths, "/usr/local/lib", "/opt/homebrew/lib")
	}
	return paths
}

// Library is an opened shared library.
type Library struct {
	name   string
	handle uintptr
}

var (
	// Hooks replaced by tests.
	openLibrary  = platformOpen
	lookupSymbol = platformLookup
	closeLibrary = platformClose
	fileExists   = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}
)

// Open loads the first of names that can be opened. Each name is tried
// bare, leaving the search to the platform loader, and then joined with
// every existing directory of paths.
func Open(names, paths []string) (*Library, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("dl: no library names: %w", bind.ErrLibraryNotFound)
	}
	var tried []string
	var errs []error
	try := func(path string) *Library {
		tried = append(tried, path)
		h, err := openLibrary(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		return &Library{name: path, handle: h}
	}
	for _, name := range names {
		if lib := try(name); lib != nil {
			return lib, nil
		}
		if filepath.IsAbs(name) {
			continue
		}
		for _, dir := range paths {
			full := filepath.Join(dir, name)
			if !fileExists(full) {
				continue
			}
			if lib := try(full); lib != nil {
				return lib, nil
			}
		}
	}
	return nil, fmt.Errorf("dl: %w (tried %s): %w", bind.ErrLibraryNotFound, strings.Join(tried, ", "), errors.Join(errs...))
}

// Name returns the path the library was opened with.
func (l *Library) Name() string {
	return l.name
}

// Lookup returns the address of the exported symbol name.
func (l *Library) Lookup(name string) (uintptr, error) {
	if l.handle == 0 {
		return 0, fmt.Errorf("dl: %s: library closed", l.name)
	}
	addr, err := lookupSymbol(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("dl: %s in %s: %w: %w", name, l.name, bind.ErrSymbolNotFound, err)
	}
	if addr == 0 {
		return 0, fmt.Errorf("dl: %s in %s: %w", name, l.name, bind.ErrSymbolNotFound)
	}
	return addr, nil
}

// Close unloads the library. Functions bound from it must not be called
// afterwards.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	h := l.handle
	l.handle = 0
	if err := closeLibrary(h); err != nil {
		return fmt.Errorf("dl: closing %s: %w", l.name, err)
	}
	return nil
}

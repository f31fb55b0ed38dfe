// SPDX-License-Identifier: Unlicense OR MIT

package dl

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvrsdk/native/bind"
)

func TestCandidates(t *testing.T) {
	tests := []struct {
		api  API
		goos string
		want []string
	}{
		{EGL, "windows", []string{"libEGL.dll"}},
		{EGL, "darwin", []string{"libEGL.dylib"}},
		{EGL, "linux", []string{"libEGL.so", "libEGL.so.1"}},
		{EGL, "android", []string{"libEGL.so", "libEGL.so.1"}},
		{GLES, "windows", []string{"libGLESv2.dll"}},
		{GLES, "ios", []string{"libGLESv2.dylib"}},
		{GLES, "linux", []string{"libGLESv2.so", "libGLESv2.so.2"}},
		{GLSC2, "windows", []string{"libGLSCv2.dll"}},
		{GLSC2, "linux", []string{"libGLSCv2.so"}},
		{Vulkan, "windows", []string{"vulkan-1.dll"}},
		{Vulkan, "darwin", []string{"libvulkan.dylib", "libvulkan.1.dylib", "libMoltenVK.dylib"}},
		{Vulkan, "linux", []string{"libvulkan.so.1", "libvulkan.so"}},
		{OpenCL, "windows", []string{"OpenCL.dll"}},
		{OpenCL, "darwin", []string{"/System/Library/Frameworks/OpenCL.framework/OpenCL"}},
		{OpenCL, "android", []string{"libOpenCL.so", "libOpenCL.so.1", "libPVROCL.so"}},
		{API(42), "linux", nil},
	}
	for _, tt := range tests {
		t.Run(tt.api.String()+"/"+tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, Candidates(tt.api, tt.goos))
		})
	}
}

func TestSearchPaths(t *testing.T) {
	env := func(k string) string {
		if k == "VULKAN_SDK" {
			return "/opt/vulkan"
		}
		return ""
	}
	paths := SearchPaths(Vulkan, "linux", env)
	require.NotEmpty(t, paths)
	assert.Equal(t, filepath.Join("/opt/vulkan", "lib"), paths[0])
	assert.Contains(t, paths, "/usr/lib")

	win := SearchPaths(Vulkan, "windows", env)
	assert.Equal(t, []string{filepath.Join("/opt/vulkan", "Bin")}, win)

	egl := SearchPaths(EGL, "linux", env)
	assert.NotContains(t, egl, filepath.Join("/opt/vulkan", "lib"))

	none := SearchPaths(Vulkan, "linux", func(string) string { return "" })
	assert.Equal(t, "/usr/lib/x86_64-linux-gnu", none[0])
}

// fakeLoader replaces the platform hooks for the duration of a test.
func fakeLoader(t *testing.T, libs map[string]uintptr, files map[string]bool) *[]string {
	t.Helper()
	var opened []string
	oldOpen, oldLookup, oldClose, oldExists := openLibrary, lookupSymbol, closeLibrary, fileExists
	t.Cleanup(func() {
		openLibrary, lookupSymbol, closeLibrary, fileExists = oldOpen, oldLookup, oldClose, oldExists
	})
	openLibrary = func(path string) (uintptr, error) {
		opened = append(opened, path)
		if h, ok := libs[path]; ok {
			return h, nil
		}
		return 0, errors.New(path + ": cannot open shared object file")
	}
	lookupSymbol = func(handle uintptr, name string) (uintptr, error) {
		if name == "eglGetDisplay" {
			return handle + 8, nil
		}
		return 0, errors.New("undefined symbol: " + name)
	}
	closeLibrary = func(uintptr) error { return nil }
	fileExists = func(path string) bool { return files[path] }
	return &opened
}

func TestOpenBareNameFirst(t *testing.T) {
	opened := fakeLoader(t, map[string]uintptr{"libEGL.so": 0x100}, nil)
	lib, err := Open([]string{"libEGL.so", "libEGL.so.1"}, []string{"/usr/lib"})
	require.NoError(t, err)
	assert.Equal(t, "libEGL.so", lib.Name())
	assert.Equal(t, []string{"libEGL.so"}, *opened)
}

func TestOpenSearchPaths(t *testing.T) {
	full := filepath.Join("/usr/lib", "libEGL.so.1")
	opened := fakeLoader(t, map[string]uintptr{full: 0x200}, map[string]bool{full: true})
	lib, err := Open([]string{"libEGL.so", "libEGL.so.1"}, []string{"/nonexistent", "/usr/lib"})
	require.NoError(t, err)
	assert.Equal(t, full, lib.Name())
	// Directories without the file are skipped.
	assert.Equal(t, []string{"libEGL.so", "libEGL.so.1", full}, *opened)

	addr, err := lib.Lookup("eglGetDisplay")
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x208), addr)

	_, err = lib.Lookup("eglNope")
	assert.ErrorIs(t, err, bind.ErrSymbolNotFound)

	require.NoError(t, lib.Close())
	require.NoError(t, lib.Close())
	_, err = lib.Lookup("eglGetDisplay")
	assert.Error(t, err)
}

func TestOpenFailure(t *testing.T) {
	fakeLoader(t, nil, nil)
	_, err := Open([]string{"libvulkan.so.1", "libvulkan.so"}, []string{"/usr/lib"})
	require.Error(t, err)
	assert.ErrorIs(t, err, bind.ErrLibraryNotFound)
	assert.Contains(t, err.Error(), "libvulkan.so.1")
	assert.Contains(t, err.Error(), "libvulkan.so")

	_, err = Open(nil, nil)
	assert.ErrorIs(t, err, bind.ErrLibraryNotFound)
}

func TestLibraryIsBindLibrary(t *testing.T) {
	var _ bind.Library = (*Library)(nil)
}

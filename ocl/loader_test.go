// SPDX-License-Identifier: Unlicense OR MIT

package ocl_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/bind/bindtest"
	"github.com/pvrsdk/native/internal/cstr"
	"github.com/pvrsdk/native/ocl"
)

func newLoader(lib *bindtest.Library) *ocl.Loader {
	return ocl.NewLoader(
		ocl.WithSource(lib.Opener()),
		ocl.WithRegistrar(bindtest.Register),
		ocl.WithLogger(zap.NewNop()),
	)
}

// fakePlatform is a driver with one platform per entry of info.
func fakePlatform(info ...map[ocl.Uint]string) *bindtest.Library {
	return bindtest.NewLibrary("libOpenCL.so.1", map[string]any{
		"clGetPlatformIDs": func(n ocl.Uint, ids *ocl.PlatformID, count *ocl.Uint) ocl.Int {
			if len(info) == 0 {
				return ocl.PLATFORM_NOT_FOUND_KHR
			}
			if count != nil {
				*count = ocl.Uint(len(info))
			}
			if ids != nil {
				out := unsafe.Slice(ids, n)
				for i := range out {
					out[i] = ocl.PlatformID(i + 1)
				}
			}
			return ocl.SUCCESS
		},
		"clGetPlatformInfo": func(p ocl.PlatformID, param ocl.Uint, size uintptr, value unsafe.Pointer, ret *uintptr) ocl.Int {
			if p == 0 || int(p) > len(info) {
				return ocl.INVALID_PLATFORM
			}
			s, ok := info[p-1][param]
			if !ok {
				return ocl.INVALID_VALUE
			}
			s += "\x00"
			if ret != nil {
				*ret = uintptr(len(s))
			}
			if value != nil {
				if size < uintptr(len(s)) {
					return ocl.INVALID_VALUE
				}
				copy(unsafe.Slice((*byte)(value), size), s)
			}
			return ocl.SUCCESS
		},
		"clGetExtensionFunctionAddress": func(name *byte) unsafe.Pointer {
			if cstr.GoString(name) == "clIcdGetPlatformIDsKHR" {
				return unsafe.Pointer(uintptr(0x1234))
			}
			return nil
		},
		"clReleaseContext": func(c ocl.Context) ocl.Int { return ocl.SUCCESS },
	})
}

func TestLoad(t *testing.T) {
	lib := fakePlatform(map[ocl.Uint]string{ocl.PLATFORM_NAME: "PowerVR"})
	l := newLoader(lib)

	f, err := l.Functions()
	require.NoError(t, err)
	assert.NotNil(t, f.GetPlatformIDs)
	assert.Nil(t, f.CreateContext)
	assert.True(t, l.Table().Has(ocl.FuncReleaseContext))
	assert.ErrorIs(t, l.Table().Require(ocl.FuncCreateContext), bind.ErrSymbolNotFound)

	f20, err := l.Functions20()
	require.NoError(t, err, "2.x functions are optional")
	assert.Nil(t, f20.SVMAlloc)
	assert.Equal(t, l.Table20().Len(), len(l.Table20().Missing()))
	_, err = l.Sharing()
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Opens(), "the tables share one library handle")

	require.NoError(t, l.Close())
	assert.True(t, lib.Closed())
}

func TestReloadAfterClose(t *testing.T) {
	lib := fakePlatform(map[ocl.Uint]string{ocl.PLATFORM_NAME: "PowerVR"})
	l := newLoader(lib)
	before, err := l.Functions()
	require.NoError(t, err)
	require.NoError(t, l.Close())
	assert.Equal(t, 0, l.Table().Generation())

	after, err := l.Functions()
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.Equal(t, 2, lib.Opens())
	assert.False(t, lib.Closed())
	ids, err := l.Platforms()
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestMissingLibrary(t *testing.T) {
	l := ocl.NewLoader(
		ocl.WithSource(bindtest.Missing("libOpenCL.so.1")),
		ocl.WithLogger(zap.NewNop()),
	)
	_, err := l.Functions()
	assert.ErrorIs(t, err, bind.ErrLibraryNotFound)
	_, err = l.Platforms()
	assert.ErrorIs(t, err, bind.ErrLibraryNotFound)
	assert.False(t, l.ExtensionSupported(1, "cl_khr_icd"))
	assert.Zero(t, l.ExtensionAddress(1, "clIcdGetPlatformIDsKHR"))
}

func TestPlatforms(t *testing.T) {
	l := newLoader(fakePlatform(
		map[ocl.Uint]string{ocl.PLATFORM_NAME: "PowerVR", ocl.PLATFORM_EXTENSIONS: "cl_khr_icd cl_khr_gl_sharing"},
		map[ocl.Uint]string{ocl.PLATFORM_NAME: "", ocl.PLATFORM_EXTENSIONS: ""},
	))
	ids, err := l.Platforms()
	require.NoError(t, err)
	require.Equal(t, []ocl.PlatformID{1, 2}, ids)

	name, err := l.PlatformInfo(ids[0], ocl.PLATFORM_NAME)
	require.NoError(t, err)
	assert.Equal(t, "PowerVR", name)
	name, err = l.PlatformInfo(ids[1], ocl.PLATFORM_NAME)
	require.NoError(t, err)
	assert.Empty(t, name)

	_, err = l.PlatformInfo(ids[0], ocl.PLATFORM_VERSION)
	var ce *ocl.CallError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ocl.Int(ocl.INVALID_VALUE), ce.Code)

	assert.True(t, l.ExtensionSupported(ids[0], "cl_khr_gl_sharing"))
	assert.False(t, l.ExtensionSupported(ids[0], "cl_khr"))
	assert.False(t, l.ExtensionSupported(ids[1], "cl_khr_icd"))
	assert.False(t, l.ExtensionSupported(3, "cl_khr_icd"))
}

func TestNoPlatforms(t *testing.T) {
	l := newLoader(fakePlatform())
	ids, err := l.Platforms()
	require.NoError(t, err, "an ICD loader without drivers is not an error")
	assert.Empty(t, ids)
}

func TestExtensionAddress(t *testing.T) {
	lib := fakePlatform(map[ocl.Uint]string{})
	l := newLoader(lib)
	assert.Equal(t, uintptr(0x1234), l.ExtensionAddress(1, "clIcdGetPlatformIDsKHR"))
	assert.Zero(t, l.ExtensionAddress(1, "clUnknownKHR"))

	lib.Define("clGetExtensionFunctionAddressForPlatform", func(p ocl.PlatformID, name *byte) unsafe.Pointer {
		return unsafe.Pointer(uintptr(0x5678))
	})
	_, err := l.Table().Reset()
	require.NoError(t, err)
	assert.Equal(t, uintptr(0x5678), l.ExtensionAddress(1, "clIcdGetPlatformIDsKHR"), "the 1.2 entry point is preferred")
}

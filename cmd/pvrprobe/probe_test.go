// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/bind/bindtest"
	"github.com/pvrsdk/native/egl/egltest"
	"github.com/pvrsdk/native/gles/glestest"
	"github.com/pvrsdk/native/glsc2"
	"github.com/pvrsdk/native/internal/cstr"
	"github.com/pvrsdk/native/internal/dl"
	"github.com/pvrsdk/native/ocl"
	"github.com/pvrsdk/native/vk"
)

func newProber(libs map[dl.API]*bindtest.Library) *prober {
	return &prober{
		open: func(api dl.API) (bind.Library, error) {
			if lib, ok := libs[api]; ok {
				return lib, nil
			}
			return nil, fmt.Errorf("%v: %w", api, bindtest.ErrNoLibrary)
		},
		reg: bindtest.Register,
		log: zap.NewNop(),
	}
}

func fakeVulkan(exts ...string) *bindtest.Library {
	global := bindtest.NewLibrary("global", map[string]any{
		"vkCreateInstance": func(info, alloc unsafe.Pointer, out *vk.Instance) vk.Result {
			return vk.ErrorInitializationFailed
		},
		"vkEnumerateInstanceExtensionProperties": func(layer *byte, n *uint32, props unsafe.Pointer) vk.Result {
			if props == nil {
				*n = uint32(len(exts))
				return vk.Success
			}
			out := unsafe.Slice((*extensionProperties)(props), *n)
			for i, ext := range exts {
				copy(out[i].Name[:], ext)
			}
			return vk.Success
		},
		"vkEnumerateInstanceLayerProperties": func(n *uint32, props unsafe.Pointer) vk.Result {
			*n = 0
			return vk.Success
		},
		"vkEnumerateInstanceVersion": func(v *uint32) vk.Result {
			*v = vk.MakeAPIVersion(0, 1, 3, 0)
			return vk.Success
		},
	})
	return bindtest.NewLibrary("libvulkan.so.1", map[string]any{
		"vkGetInstanceProcAddr": func(inst vk.Instance, name *byte) uintptr {
			if inst != 0 {
				return 0
			}
			return global.ProcAddress(cstr.GoString(name))
		},
	})
}

func TestProbeEGL(t *testing.T) {
	d := egltest.New("EGL_KHR_image_base EGL_KHR_fence_sync")
	r := newProber(map[dl.API]*bindtest.Library{dl.EGL: d.Lib}).probe(dl.EGL)

	require.NoError(t, r.Err)
	assert.Equal(t, "libEGL.so.1", r.Library)
	assert.Equal(t, "1.5", r.Version)
	assert.Equal(t, []string{"EGL_KHR_image_base", "EGL_KHR_fence_sync"}, r.Extensions)
	require.Len(t, r.Tiers, 2)
	assert.Equal(t, "EGL", r.Tiers[0].Name)
	assert.NotEmpty(t, r.Tiers[0].Missing, "the fake driver does not export every EGL 1.5 function")
	assert.True(t, r.Tiers[1].Optional)
	assert.Positive(t, r.Tiers[1].Resolved())
	assert.False(t, d.Initialized(), "the display is terminated after probing")
	assert.True(t, d.Lib.Closed())
}

func TestProbeMissingLibrary(t *testing.T) {
	p := newProber(nil)
	for _, api := range dl.APIs {
		r := p.probe(api)
		assert.ErrorIs(t, r.Err, bind.ErrLibraryNotFound, api.String())
		assert.Empty(t, r.Library)
	}
}

func TestProbeGLES(t *testing.T) {
	gl := glestest.New("OpenGL ES 2.0", "GL_OES_mapbuffer")
	el := egltest.New("")
	r := newProber(map[dl.API]*bindtest.Library{dl.GLES: gl.Lib, dl.EGL: el.Lib}).probe(dl.GLES)

	require.NoError(t, r.Err)
	assert.Equal(t, "libGLESv2.so", r.Library)
	require.Len(t, r.Tiers, 5)
	assert.Equal(t, "GLES 2.0", r.Tiers[0].Name)
	assert.False(t, r.Tiers[0].Optional)
	for _, tr := range r.Tiers[1:] {
		assert.True(t, tr.Optional, tr.Name)
		assert.NotEmpty(t, tr.Missing, tr.Name)
	}
}

func TestProbeGLESWithoutEGL(t *testing.T) {
	gl := glestest.New("OpenGL ES 2.0", "")
	r := newProber(map[dl.API]*bindtest.Library{dl.GLES: gl.Lib}).probe(dl.GLES)

	assert.ErrorIs(t, r.Err, bind.ErrLibraryNotFound)
	assert.ErrorContains(t, r.Err, "extensions unavailable")
	require.Len(t, r.Tiers, 5)
	ext := r.Tiers[4]
	assert.Equal(t, 0, ext.Resolved())
}

func TestProbeGLSC2(t *testing.T) {
	lib := bindtest.NewLibrary("libGLSCv2.so", map[string]any{
		"glGetError": func() glsc2.Enum { return glsc2.NO_ERROR },
	})
	r := newProber(map[dl.API]*bindtest.Library{dl.GLSC2: lib}).probe(dl.GLSC2)

	require.NoError(t, r.Err)
	require.Len(t, r.Tiers, 1)
	assert.Equal(t, 1, r.Tiers[0].Resolved())
	assert.Greater(t, r.Tiers[0].Total, 1)
}

func TestProbeVulkan(t *testing.T) {
	lib := fakeVulkan("VK_KHR_surface", "VK_EXT_debug_utils")
	r := newProber(map[dl.API]*bindtest.Library{dl.Vulkan: lib}).probe(dl.Vulkan)

	require.NoError(t, r.Err)
	assert.Equal(t, "1.3.0", r.Version)
	assert.Equal(t, []string{"VK_EXT_debug_utils", "VK_KHR_surface"}, r.Extensions)
	require.Len(t, r.Tiers, 1)
	assert.Empty(t, r.Tiers[0].Missing)
	assert.Equal(t, len(vk.GlobalCommands()), r.Tiers[0].Total)
}

func TestProbeVulkanWithoutResolver(t *testing.T) {
	lib := bindtest.NewLibrary("libvulkan.so.1", nil)
	r := newProber(map[dl.API]*bindtest.Library{dl.Vulkan: lib}).probe(dl.Vulkan)

	assert.ErrorIs(t, r.Err, bind.ErrSymbolNotFound)
	require.Len(t, r.Tiers, 1)
	assert.Equal(t, 0, r.Tiers[0].Resolved())
}

func TestRender(t *testing.T) {
	reports := []apiReport{
		{
			API:        dl.EGL,
			Library:    "libEGL.so.1",
			Version:    "1.5",
			Tiers:      []tierReport{{Name: "EGL", Total: 3, Missing: []string{"eglCreateSync"}}},
			Extensions: []string{"EGL_KHR_image_base"},
		},
		{API: dl.Vulkan, Err: bind.ErrLibraryNotFound},
	}

	out := render(reports, renderOptions{})
	assert.Contains(t, out, "egl (libEGL.so.1)")
	assert.Contains(t, out, "2/3")
	assert.Contains(t, out, "1.5")
	assert.Contains(t, out, "error: library not found")
	assert.NotContains(t, out, "eglCreateSync")
	assert.NotContains(t, out, "EGL_KHR_image_base")

	out = render(reports, renderOptions{missing: true, extensions: true})
	assert.Contains(t, out, "eglCreateSync")
	assert.Contains(t, out, "EGL_KHR_image_base")
}

func TestProbeOpenCL(t *testing.T) {
	info := map[ocl.Uint]string{
		ocl.PLATFORM_VERSION:    "OpenCL 1.2 ",
		ocl.PLATFORM_EXTENSIONS: "cl_khr_icd cl_khr_egl_image",
	}
	lib := bindtest.NewLibrary("libOpenCL.so.1", map[string]any{
		"clGetPlatformIDs": func(n ocl.Uint, ids *ocl.PlatformID, count *ocl.Uint) ocl.Int {
			if count != nil {
				*count = 1
			}
			if ids != nil {
				*ids = 1
			}
			return ocl.SUCCESS
		},
		"clGetPlatformInfo": func(p ocl.PlatformID, param ocl.Uint, size uintptr, value unsafe.Pointer, ret *uintptr) ocl.Int {
			s := info[param] + "\x00"
			if ret != nil {
				*ret = uintptr(len(s))
			}
			if value != nil {
				copy(unsafe.Slice((*byte)(value), size), s)
			}
			return ocl.SUCCESS
		},
	})
	r := newProber(map[dl.API]*bindtest.Library{dl.OpenCL: lib}).probe(dl.OpenCL)

	require.NoError(t, r.Err)
	assert.Equal(t, "libOpenCL.so.1", r.Library)
	assert.Equal(t, "OpenCL 1.2 ", r.Version)
	assert.Equal(t, []string{"cl_khr_egl_image", "cl_khr_icd"}, r.Extensions)
	require.Len(t, r.Tiers, 3)
	assert.Equal(t, "OpenCL", r.Tiers[0].Name)
	assert.Equal(t, 2, r.Tiers[0].Resolved())
	assert.True(t, r.Tiers[1].Optional)
	assert.Equal(t, 0, r.Tiers[2].Resolved())
	assert.True(t, lib.Closed())
}

func TestProbeOpenCLWithoutPlatforms(t *testing.T) {
	lib := bindtest.NewLibrary("libOpenCL.so.1", map[string]any{
		"clGetPlatformIDs": func(n ocl.Uint, ids *ocl.PlatformID, count *ocl.Uint) ocl.Int {
			return ocl.PLATFORM_NOT_FOUND_KHR
		},
	})
	r := newProber(map[dl.API]*bindtest.Library{dl.OpenCL: lib}).probe(dl.OpenCL)

	require.NoError(t, r.Err)
	assert.Empty(t, r.Version)
	assert.Empty(t, r.Extensions)
	require.Len(t, r.Tiers, 3)
}

func TestParseAPIs(t *testing.T) {
	apis, err := parseAPIs(nil)
	require.NoError(t, err)
	assert.Equal(t, dl.APIs, apis)

	apis, err = parseAPIs([]string{"Vulkan", "egl", "vulkan"})
	require.NoError(t, err)
	assert.Equal(t, []dl.API{dl.Vulkan, dl.EGL}, apis)

	apis, err = parseAPIs([]string{"OpenCL"})
	require.NoError(t, err)
	assert.Equal(t, []dl.API{dl.OpenCL}, apis)

	_, err = parseAPIs([]string{"metal"})
	assert.ErrorContains(t, err, `unknown API "metal"`)
}

// SPDX-License-Identifier: Unlicense OR MIT

package vk_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/bind/bindtest"
	"github.com/pvrsdk/native/internal/cstr"
	"github.com/pvrsdk/native/vk"
)

const testInstance vk.Instance = 0x1a

// fakeLoader models a Vulkan loader: the library exports only
// vkGetInstanceProcAddr, which resolves global commands for a null
// instance and instance commands for testInstance.
type fakeLoader struct {
	lib      *bindtest.Library
	global   *bindtest.Library
	instance *bindtest.Library
	device   *bindtest.Library
}

func newFakeLoader(version uint32) *fakeLoader {
	f := &fakeLoader{
		global: bindtest.NewLibrary("global", map[string]any{
			"vkCreateInstance": func(info, alloc unsafe.Pointer, out *vk.Instance) vk.Result {
				*out = testInstance
				return vk.Success
			},
			"vkEnumerateInstanceExtensionProperties": func(layer *byte, n *uint32, props unsafe.Pointer) vk.Result {
				*n = 0
				return vk.Success
			},
			"vkEnumerateInstanceLayerProperties": func(n *uint32, props unsafe.Pointer) vk.Result {
				*n = 0
				return vk.Success
			},
		}),
		device: bindtest.NewLibrary("device", map[string]any{
			"vkDestroyDevice": func(dev vk.Device, alloc unsafe.Pointer) {},
			"vkGetDeviceQueue": func(dev vk.Device, family, index uint32, q *vk.Queue) {
				*q = vk.Queue(dev)<<8 | vk.Queue(family)
			},
		}),
	}
	if version != 0 {
		f.global.Define("vkEnumerateInstanceVersion", func(v *uint32) vk.Result {
			*v = version
			return vk.Success
		})
	}
	f.instance = bindtest.NewLibrary("instance", map[string]any{
		"vkDestroyInstance": func(inst vk.Instance, alloc unsafe.Pointer) {},
		"vkEnumeratePhysicalDevices": func(inst vk.Instance, n *uint32, devs *vk.PhysicalDevice) vk.Result {
			*n = 1
			return vk.Success
		},
		"vkGetDeviceProcAddr": func(dev vk.Device, name *byte) uintptr {
			return f.device.ProcAddress(cstr.GoString(name))
		},
	})
	f.lib = bindtest.NewLibrary("libvulkan.so.1", map[string]any{
		"vkGetInstanceProcAddr": func(inst vk.Instance, name *byte) uintptr {
			switch inst {
			case 0:
				return f.global.ProcAddress(cstr.GoString(name))
			case testInstance:
				return f.instance.ProcAddress(cstr.GoString(name))
			}
			return 0
		},
	})
	return f
}

func opts(open func() (bind.Source, error)) []vk.Option {
	return []vk.Option{vk.WithSource(open), vk.WithRegistrar(bindtest.Register), vk.WithLogger(zap.NewNop())}
}

func TestLoadBindings(t *testing.T) {
	f := newFakeLoader(vk.MakeAPIVersion(0, 1, 3, 250))
	b, err := vk.LoadBindings(opts(f.lib.Opener())...)
	require.NoError(t, err)
	require.NotNil(t, b.CreateInstance)
	require.NotNil(t, b.EnumerateInstanceVersion)

	var inst vk.Instance
	require.NoError(t, b.CreateInstance(nil, nil, &inst).Err())
	assert.Equal(t, testInstance, inst)

	v, err := b.InstanceVersion()
	require.NoError(t, err)
	assert.Equal(t, vk.Version{Major: 1, Minor: 3, Patch: 250}, v)
	assert.Equal(t, "1.3.250", v.String())
	assert.Equal(t, 1, f.lib.Lookups(), "only vkGetInstanceProcAddr is looked up in the library")
}

func TestLoadBindingsVulkan10(t *testing.T) {
	f := newFakeLoader(0)
	b, err := vk.LoadBindings(opts(f.lib.Opener())...)
	require.NoError(t, err)
	assert.Nil(t, b.EnumerateInstanceVersion)
	v, err := b.InstanceVersion()
	require.NoError(t, err)
	assert.Equal(t, vk.Version{Major: 1}, v)
}

func TestLoadBindingsMissingRequired(t *testing.T) {
	f := newFakeLoader(0)
	f.global.Remove("vkCreateInstance")
	_, err := vk.LoadBindings(opts(f.lib.Opener())...)
	var se *bind.SymbolError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"vkCreateInstance"}, se.Names)
}

func TestLoadBindingsMissingLibrary(t *testing.T) {
	_, err := vk.LoadBindings(opts(bindtest.Missing("libvulkan.so.1"))...)
	assert.ErrorIs(t, err, bind.ErrLibraryNotFound)

	empty := bindtest.NewLibrary("libvulkan.so.1", nil)
	_, err = vk.LoadBindings(opts(empty.Opener())...)
	assert.ErrorIs(t, err, bind.ErrSymbolNotFound)
}

func TestInstanceAndDeviceBindings(t *testing.T) {
	f := newFakeLoader(0)
	l := vk.NewLoader(opts(f.lib.Opener())...)
	b, err := l.Bindings()
	require.NoError(t, err)

	ib, missing := vk.NewInstanceBindings(b, testInstance, opts(nil)...)
	require.NotNil(t, ib.EnumeratePhysicalDevices)
	require.NotNil(t, ib.GetDeviceProcAddr)
	assert.Contains(t, missing, "vkCreateDevice")
	assert.NotContains(t, missing, "vkDestroyInstance")

	var n uint32
	require.NoError(t, ib.EnumeratePhysicalDevices(testInstance, &n, nil).Err())
	assert.Equal(t, uint32(1), n)

	db, missing := vk.NewDeviceBindings(ib, 0x2b, opts(nil)...)
	require.NotNil(t, db.GetDeviceQueue)
	assert.Contains(t, missing, "vkQueueSubmit")
	var q vk.Queue
	db.GetDeviceQueue(0x2b, 3, 0, &q)
	assert.Equal(t, vk.Queue(0x2b03), q)

	require.NoError(t, l.Close())
	assert.True(t, f.lib.Closed())
}

func TestBindingsWithoutResolver(t *testing.T) {
	ib, missing := vk.NewInstanceBindings(vk.Bindings{}, testInstance)
	assert.Nil(t, ib.DestroyInstance)
	assert.NotEmpty(t, missing)
	assert.Equal(t, vk.InstanceCommands(), missing)
	_, missing = vk.NewDeviceBindings(ib, 1)
	assert.Contains(t, missing, "vkGetDeviceQueue")
	assert.Equal(t, vk.DeviceCommands(), missing)
}

func TestCommandLists(t *testing.T) {
	assert.Equal(t, []string{
		"vkCreateInstance",
		"vkEnumerateInstanceExtensionProperties",
		"vkEnumerateInstanceLayerProperties",
		"vkEnumerateInstanceVersion",
		"vkGetInstanceProcAddr",
	}, vk.GlobalCommands())
	assert.Contains(t, vk.InstanceCommands(), "vkGetDeviceProcAddr")
	assert.Contains(t, vk.DeviceCommands(), "vkQueueSubmit")

	names := vk.GlobalCommands()
	names[0] = "changed"
	assert.Equal(t, "vkCreateInstance", vk.GlobalCommands()[0])
}

func TestResult(t *testing.T) {
	assert.NoError(t, vk.Success.Err())
	assert.NoError(t, vk.Incomplete.Err())
	assert.NoError(t, vk.SuboptimalKHR.Err())
	err := vk.ErrorDeviceLost.Err()
	require.Error(t, err)
	assert.EqualError(t, err, "vulkan: VK_ERROR_DEVICE_LOST")
	assert.ErrorIs(t, err, vk.ErrorDeviceLost)
	assert.Equal(t, "VkResult(-42)", vk.Result(-42).String())
}

func TestAPIVersion(t *testing.T) {
	v := vk.MakeAPIVersion(0, 1, 2, 3)
	assert.Equal(t, uint32(1<<22|2<<12|3), v)
	assert.Equal(t, vk.Version{Major: 1, Minor: 2, Patch: 3}, vk.ParseAPIVersion(v))
}

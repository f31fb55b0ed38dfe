// SPDX-License-Identifier: Unlicense OR MIT

package vk

import "fmt"

// Dispatchable handles.
type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
	Queue          uintptr
	CommandBuffer  uintptr
)

// Non-dispatchable handles.
type (
	Semaphore                uint64
	Fence                    uint64
	DeviceMemory             uint64
	Buffer                   uint64
	Image                    uint64
	Event                    uint64
	QueryPool                uint64
	BufferView               uint64
	ImageView                uint64
	ShaderModule             uint64
	PipelineCache            uint64
	PipelineLayout           uint64
	RenderPass               uint64
	Pipeline                 uint64
	DescriptorSetLayout      uint64
	Sampler                  uint64
	DescriptorPool           uint64
	DescriptorSet            uint64
	Framebuffer              uint64
	CommandPool              uint64
	SamplerYcbcrConversion   uint64
	DescriptorUpdateTemplate uint64
	SurfaceKHR               uint64
	SwapchainKHR             uint64
	DisplayKHR               uint64
	DisplayModeKHR           uint64
	DebugReportCallbackEXT   uint64
	DebugUtilsMessengerEXT   uint64
	ValidationCacheEXT       uint64
)

type (
	Format                   int32
	ImageType                int32
	ImageTiling              int32
	PipelineBindPoint        int32
	IndexType                int32
	ImageLayout              int32
	Filter                   int32
	SubpassContents          int32
	DebugReportObjectTypeEXT int32
	ShaderInfoTypeAMD        int32
	PresentModeKHR           int32

	Bool32     uint32
	DeviceSize uint64
	Flags      uint32
)

const (
	False Bool32 = 0
	True  Bool32 = 1
)

// Result is a VkResult. Negative values are errors.
type Result int32

const (
	Success                     Result = 0
	NotReady                    Result = 1
	Timeout                     Result = 2
	EventSet                    Result = 3
	EventReset                  Result = 4
	Incomplete                  Result = 5
	ErrorOutOfHostMemory        Result = -1
	ErrorOutOfDeviceMemory      Result = -2
	ErrorInitializationFailed   Result = -3
	ErrorDeviceLost             Result = -4
	ErrorMemoryMapFailed        Result = -5
	ErrorLayerNotPresent        Result = -6
	ErrorExtensionNotPresent    Result = -7
	ErrorFeatureNotPresent      Result = -8
	ErrorIncompatibleDriver     Result = -9
	ErrorTooManyObjects         Result = -10
	ErrorFormatNotSupported     Result = -11
	ErrorFragmentedPool         Result = -12
	ErrorUnknown                Result = -13
	ErrorOutOfPoolMemory        Result = -1000069000
	ErrorInvalidExternalHandle  Result = -1000072003
	ErrorFragmentation          Result = -1000161000
	ErrorSurfaceLostKHR         Result = -1000000000
	ErrorNativeWindowInUseKHR   Result = -1000000001
	SuboptimalKHR               Result = 1000001003
	ErrorOutOfDateKHR           Result = -1000001004
	ErrorIncompatibleDisplayKHR Result = -1000003001
	ErrorValidationFailedEXT    Result = -1000011001
)

var resultNames = map[Result]string{
	Success:                     "VK_SUCCESS",
	NotReady:                    "VK_NOT_READY",
	Timeout:                     "VK_TIMEOUT",
	EventSet:                    "VK_EVENT_SET",
	EventReset:                  "VK_EVENT_RESET",
	Incomplete:                  "VK_INCOMPLETE",
	ErrorOutOfHostMemory:        "VK_ERROR_OUT_OF_HOST_MEMORY",
	ErrorOutOfDeviceMemory:      "VK_ERROR_OUT_OF_DEVICE_MEMORY",
	ErrorInitializationFailed:   "VK_ERROR_INITIALIZATION_FAILED",
	ErrorDeviceLost:             "VK_ERROR_DEVICE_LOST",
	ErrorMemoryMapFailed:        "VK_ERROR_MEMORY_MAP_FAILED",
	ErrorLayerNotPresent:        "VK_ERROR_LAYER_NOT_PRESENT",
	ErrorExtensionNotPresent:    "VK_ERROR_EXTENSION_NOT_PRESENT",
	ErrorFeatureNotPresent:      "VK_ERROR_FEATURE_NOT_PRESENT",
	ErrorIncompatibleDriver:     "VK_ERROR_INCOMPATIBLE_DRIVER",
	ErrorTooManyObjects:         "VK_ERROR_TOO_MANY_OBJECTS",
	ErrorFormatNotSupported:     "VK_ERROR_FORMAT_NOT_SUPPORTED",
	ErrorFragmentedPool:         "VK_ERROR_FRAGMENTED_POOL",
	ErrorUnknown:                "VK_ERROR_UNKNOWN",
	ErrorOutOfPoolMemory:        "VK_ERROR_OUT_OF_POOL_MEMORY",
	ErrorInvalidExternalHandle:  "VK_ERROR_INVALID_EXTERNAL_HANDLE",
	ErrorFragmentation:          "VK_ERROR_FRAGMENTATION",
	ErrorSurfaceLostKHR:         "VK_ERROR_SURFACE_LOST_KHR",
	ErrorNativeWindowInUseKHR:   "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR",
	SuboptimalKHR:               "VK_SUBOPTIMAL_KHR",
	ErrorOutOfDateKHR:           "VK_ERROR_OUT_OF_DATE_KHR",
	ErrorIncompatibleDisplayKHR: "VK_ERROR_INCOMPATIBLE_DISPLAY_KHR",
	ErrorValidationFailedEXT:    "VK_ERROR_VALIDATION_FAILED_EXT",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("VkResult(%d)", int32(r))
}

func (r Result) Error() string {
	return "vulkan: " + r.String()
}

// Err returns r as an error if it is an error code, and nil for success
// codes.
func (r Result) Err() error {
	if r >= 0 {
		return nil
	}
	return r
}

// MakeAPIVersion packs a Vulkan version number.
func MakeAPIVersion(variant, major, minor, patch uint32) uint32 {
	return variant<<29 | major<<22 | minor<<12 | patch
}

// Version is an unpacked Vulkan version number.
type Version struct {
	Variant, Major, Minor, Patch uint32
}

// ParseAPIVersion unpacks a version made by MakeAPIVersion.
func ParseAPIVersion(v uint32) Version {
	return Version{
		Variant: v >> 29,
		Major:   (v >> 22) & 0x7f,
		Minor:   (v >> 12) & 0x3ff,
		Patch:   v & 0xfff,
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var APIVersion10 = MakeAPIVersion(0, 1, 0, 0)

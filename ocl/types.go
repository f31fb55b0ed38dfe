// SPDX-License-Identifier: Unlicense OR MIT

package ocl

type (
	Int               int32
	Uint              uint32
	Ulong             uint64
	Bool              uint32
	Bitfield          uint64
	Intptr            int
	ContextProperties int

	PlatformID   uintptr
	DeviceID     uintptr
	Context      uintptr
	CommandQueue uintptr
	Mem          uintptr
	Program      uintptr
	Kernel       uintptr
	Event        uintptr
	Sampler      uintptr
)

// ImageFormat is cl_image_format.
type ImageFormat struct {
	ChannelOrder    Uint
	ChannelDataType Uint
}

// ImageDesc is cl_image_desc. Buffer doubles as mem_object.
type ImageDesc struct {
	ImageType       Uint
	ImageWidth      uintptr
	ImageHeight     uintptr
	ImageDepth      uintptr
	ImageArraySize  uintptr
	ImageRowPitch   uintptr
	ImageSlicePitch uintptr
	NumMipLevels    Uint
	NumSamples      Uint
	Buffer          Mem
}

const (
	FALSE = 0
	TRUE  = 1

	SUCCESS                       = 0
	DEVICE_NOT_FOUND              = -1
	DEVICE_NOT_AVAILABLE          = -2
	COMPILER_NOT_AVAILABLE        = -3
	MEM_OBJECT_ALLOCATION_FAILURE = -4
	OUT_OF_RESOURCES              = -5
	OUT_OF_HOST_MEMORY            = -6
	PROFILING_INFO_NOT_AVAILABLE  = -7
	MEM_COPY_OVERLAP              = -8
	IMAGE_FORMAT_MISMATCH         = -9
	IMAGE_FORMAT_NOT_SUPPORTED    = -10
	BUILD_PROGRAM_FAILURE         = -11
	MAP_FAILURE                   = -12
	INVALID_VALUE                 = -30
	INVALID_DEVICE_TYPE           = -31
	INVALID_PLATFORM              = -32
	INVALID_DEVICE                = -33
	INVALID_CONTEXT               = -34
	INVALID_QUEUE_PROPERTIES      = -35
	INVALID_COMMAND_QUEUE         = -36
	INVALID_HOST_PTR              = -37
	INVALID_MEM_OBJECT            = -38
	INVALID_BINARY                = -42
	INVALID_BUILD_OPTIONS         = -43
	INVALID_PROGRAM               = -44
	INVALID_KERNEL_NAME           = -46
	INVALID_KERNEL                = -48
	INVALID_ARG_INDEX             = -49
	INVALID_ARG_VALUE             = -50
	INVALID_ARG_SIZE              = -51
	INVALID_KERNEL_ARGS           = -52
	INVALID_WORK_DIMENSION        = -53
	INVALID_WORK_GROUP_SIZE       = -54
	INVALID_EVENT                 = -58
	INVALID_OPERATION             = -59
	INVALID_BUFFER_SIZE           = -61
	INVALID_GLOBAL_WORK_SIZE      = -63
	PLATFORM_NOT_FOUND_KHR        = -1001

	PLATFORM_PROFILE    = 0x0900
	PLATFORM_VERSION    = 0x0901
	PLATFORM_NAME       = 0x0902
	PLATFORM_VENDOR     = 0x0903
	PLATFORM_EXTENSIONS = 0x0904

	DEVICE_TYPE_DEFAULT     = 1 << 0
	DEVICE_TYPE_CPU         = 1 << 1
	DEVICE_TYPE_GPU         = 1 << 2
	DEVICE_TYPE_ACCELERATOR = 1 << 3
	DEVICE_TYPE_ALL         = 0xffffffff

	DEVICE_NAME       = 0x102b
	DEVICE_VENDOR     = 0x102c
	DRIVER_VERSION    = 0x102d
	DEVICE_VERSION    = 0x102f
	DEVICE_EXTENSIONS = 0x1030

	CONTEXT_PLATFORM = 0x1084
	GL_CONTEXT_KHR   = 0x2008
	EGL_DISPLAY_KHR  = 0x2009

	MEM_READ_WRITE     = 1 << 0
	MEM_WRITE_ONLY     = 1 << 1
	MEM_READ_ONLY      = 1 << 2
	MEM_USE_HOST_PTR   = 1 << 3
	MEM_ALLOC_HOST_PTR = 1 << 4
	MEM_COPY_HOST_PTR  = 1 << 5

	PROGRAM_BUILD_LOG = 0x1183
)

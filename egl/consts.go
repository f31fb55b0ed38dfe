// SPDX-License-Identifier: Unlicense OR MIT

package egl

const (
	FALSE = 0
	TRUE  = 1

	SUCCESS             = 0x3000
	NOT_INITIALIZED     = 0x3001
	BAD_ACCESS          = 0x3002
	BAD_ALLOC           = 0x3003
	BAD_ATTRIBUTE       = 0x3004
	BAD_CONFIG          = 0x3005
	BAD_CONTEXT         = 0x3006
	BAD_CURRENT_SURFACE = 0x3007
	BAD_DISPLAY         = 0x3008
	BAD_MATCH           = 0x3009
	BAD_NATIVE_PIXMAP   = 0x300a
	BAD_NATIVE_WINDOW   = 0x300b
	BAD_PARAMETER       = 0x300c
	BAD_SURFACE         = 0x300d
	CONTEXT_LOST        = 0x300e

	BUFFER_SIZE             = 0x3020
	ALPHA_SIZE              = 0x3021
	BLUE_SIZE               = 0x3022
	GREEN_SIZE              = 0x3023
	RED_SIZE                = 0x3024
	DEPTH_SIZE              = 0x3025
	STENCIL_SIZE            = 0x3026
	CONFIG_CAVEAT           = 0x3027
	CONFIG_ID               = 0x3028
	LEVEL                   = 0x3029
	MAX_PBUFFER_HEIGHT      = 0x302a
	MAX_PBUFFER_PIXELS      = 0x302b
	MAX_PBUFFER_WIDTH       = 0x302c
	NATIVE_RENDERABLE       = 0x302d
	NATIVE_VISUAL_ID        = 0x302e
	NATIVE_VISUAL_TYPE      = 0x302f
	SAMPLES                 = 0x3031
	SAMPLE_BUFFERS          = 0x3032
	SURFACE_TYPE            = 0x3033
	TRANSPARENT_TYPE        = 0x3034
	NONE                    = 0x3038
	BIND_TO_TEXTURE_RGB     = 0x3039
	BIND_TO_TEXTURE_RGBA    = 0x303a
	MIN_SWAP_INTERVAL       = 0x303b
	MAX_SWAP_INTERVAL       = 0x303c
	LUMINANCE_SIZE          = 0x303d
	ALPHA_MASK_SIZE         = 0x303e
	COLOR_BUFFER_TYPE       = 0x303f
	RENDERABLE_TYPE         = 0x3040
	CONFORMANT              = 0x3042
	RGB_BUFFER              = 0x308e
	SLOW_CONFIG             = 0x3050
	NON_CONFORMANT_CONFIG   = 0x3051
	VENDOR                  = 0x3053
	VERSION                 = 0x3054
	EXTENSIONS              = 0x3055
	CLIENT_APIS             = 0x308d
	HEIGHT                  = 0x3056
	WIDTH                   = 0x3057
	LARGEST_PBUFFER         = 0x3058
	DRAW                    = 0x3059
	READ                    = 0x305a
	CORE_NATIVE_ENGINE      = 0x305b
	TEXTURE_FORMAT          = 0x3080
	TEXTURE_TARGET          = 0x3081
	MIPMAP_TEXTURE          = 0x3082
	RENDER_BUFFER           = 0x3086
	BACK_BUFFER             = 0x3084
	SINGLE_BUFFER           = 0x3085
	SWAP_BEHAVIOR           = 0x3093
	BUFFER_PRESERVED        = 0x3094
	BUFFER_DESTROYED        = 0x3095
	CONTEXT_CLIENT_TYPE     = 0x3097
	CONTEXT_CLIENT_VERSION  = 0x3098
	CONTEXT_MAJOR_VERSION   = 0x3098
	CONTEXT_MINOR_VERSION   = 0x30fb
	OPENGL_ES_API           = 0x30a0
	OPENVG_API              = 0x30a1
	OPENGL_API              = 0x30a2
	GL_COLORSPACE           = 0x309d
	GL_COLORSPACE_SRGB      = 0x3089
	GL_COLORSPACE_LINEAR    = 0x308a
	PLATFORM_ANDROID_KHR    = 0x3141
	PLATFORM_GBM_KHR        = 0x31d7
	PLATFORM_WAYLAND_KHR    = 0x31d8
	PLATFORM_X11_KHR        = 0x31d5
	PLATFORM_DEVICE_EXT     = 0x313f
	PLATFORM_SURFACELESS    = 0x31dd
	SYNC_FENCE              = 0x30f9
	SYNC_FLUSH_COMMANDS_BIT = 0x0001
	CONDITION_SATISFIED     = 0x30f6
	TIMEOUT_EXPIRED         = 0x30f5
	FOREVER                 = 0xffffffffffffffff

	PBUFFER_BIT                  = 0x0001
	PIXMAP_BIT                   = 0x0002
	WINDOW_BIT                   = 0x0004
	OPENGL_ES_BIT                = 0x0001
	OPENVG_BIT                   = 0x0002
	OPENGL_ES2_BIT               = 0x0004
	OPENGL_BIT                   = 0x0008
	OPENGL_ES3_BIT               = 0x0040
	CONTEXT_OPENGL_DEBUG         = 0x31b0
	CONTEXT_OPENGL_ROBUST_ACCESS = 0x31b2
)

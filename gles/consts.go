// SPDX-License-Identifier: Unlicense OR MIT

package gles

const (
	ALL_BARRIER_BITS                      = 0xffffffff
	ARRAY_BUFFER                          = 0x8892
	ACTIVE_ATTRIBUTES                     = 0x8b89
	ACTIVE_UNIFORMS                       = 0x8b86
	BACK                                  = 0x0405
	BLEND                                 = 0x0be2
	BYTE                                  = 0x1400
	CLAMP_TO_EDGE                         = 0x812f
	COLOR_ATTACHMENT0                     = 0x8ce0
	COLOR_BUFFER_BIT                      = 0x4000
	COMPILE_STATUS                        = 0x8b81
	COMPUTE_SHADER                        = 0x91b9
	CULL_FACE                             = 0x0b44
	DELETE_STATUS                         = 0x8b80
	DEPTH_ATTACHMENT                      = 0x8d00
	DEPTH_BUFFER_BIT                      = 0x0100
	DEPTH_COMPONENT16                     = 0x81a5
	DEPTH_COMPONENT24                     = 0x81a6
	DEPTH_COMPONENT32F                    = 0x8cac
	DEPTH_TEST                            = 0x0b71
	DRAW_FRAMEBUFFER                      = 0x8ca9
	DST_COLOR                             = 0x0306
	DYNAMIC_DRAW                          = 0x88e8
	DYNAMIC_READ                          = 0x88e9
	ELEMENT_ARRAY_BUFFER                  = 0x8893
	EXTENSIONS                            = 0x1f03
	FALSE                                 = 0
	FLOAT                                 = 0x1406
	FRAGMENT_SHADER                       = 0x8b30
	FRAMEBUFFER                           = 0x8d40
	FRAMEBUFFER_ATTACHMENT_COLOR_ENCODING = 0x8210
	FRAMEBUFFER_BINDING                   = 0x8ca6
	FRAMEBUFFER_COMPLETE                  = 0x8cd5
	FRAMEBUFFER_SRGB                      = 0x8db9
	GEQUAL                                = 0x0206
	GREATER                               = 0x0204
	HALF_FLOAT                            = 0x140b
	HALF_FLOAT_OES                        = 0x8d61
	INFO_LOG_LENGTH                       = 0x8b84
	INT                                   = 0x1404
	INVALID_ENUM                          = 0x0500
	INVALID_FRAMEBUFFER_OPERATION         = 0x0506
	INVALID_INDEX                         = 0xffffffff
	INVALID_OPERATION                     = 0x0502
	INVALID_VALUE                         = 0x0501
	LINEAR                                = 0x2601
	LINK_STATUS                           = 0x8b82
	LUMINANCE                             = 0x1909
	MAJOR_VERSION                         = 0x821b
	MAP_READ_BIT                          = 0x0001
	MAX_TEXTURE_SIZE                      = 0x0d33
	MINOR_VERSION                         = 0x821c
	NEAREST                               = 0x2600
	NO_ERROR                              = 0
	NUM_EXTENSIONS                        = 0x821d
	ONE                                   = 1
	ONE_MINUS_SRC_ALPHA                   = 0x0303
	OUT_OF_MEMORY                         = 0x0505
	PROGRAM_BINARY_LENGTH                 = 0x8741
	QUERY_RESULT                          = 0x8866
	QUERY_RESULT_AVAILABLE                = 0x8867
	R16F                                  = 0x822d
	R8                                    = 0x8229
	READ_FRAMEBUFFER                      = 0x8ca8
	READ_ONLY                             = 0x88b8
	READ_WRITE                            = 0x88ba
	RED                                   = 0x1903
	RENDERBUFFER                          = 0x8d41
	RENDERBUFFER_BINDING                  = 0x8ca7
	RENDERBUFFER_HEIGHT                   = 0x8d43
	RENDERBUFFER_WIDTH                    = 0x8d42
	RENDERER                              = 0x1f01
	RGB                                   = 0x1907
	RGBA                                  = 0x1908
	RGBA8                                 = 0x8058
	SHADER_STORAGE_BUFFER                 = 0x90d2
	SHADING_LANGUAGE_VERSION              = 0x8b8c
	SHORT                                 = 0x1402
	SRC_ALPHA                             = 0x0302
	SRGB                                  = 0x8c40
	SRGB8                                 = 0x8c41
	SRGB8_ALPHA8                          = 0x8c43
	SRGB_ALPHA_EXT                        = 0x8c42
	STACK_OVERFLOW                        = 0x0503
	STACK_UNDERFLOW                       = 0x0504
	STATIC_DRAW                           = 0x88e4
	STENCIL_BUFFER_BIT                    = 0x0400
	TEXTURE0                              = 0x84c0
	TEXTURE1                              = 0x84c1
	TEXTURE_2D                            = 0x0de1
	TEXTURE_MAG_FILTER                    = 0x2800
	TEXTURE_MIN_FILTER                    = 0x2801
	TEXTURE_WRAP_S                        = 0x2802
	TEXTURE_WRAP_T                        = 0x2803
	TRIANGLES                             = 0x0004
	TRIANGLE_STRIP                        = 0x0005
	TRUE                                  = 1
	UNIFORM_BUFFER                        = 0x8a11
	UNPACK_ALIGNMENT                      = 0x0cf5
	UNSIGNED_BYTE                         = 0x1401
	UNSIGNED_INT                          = 0x1405
	UNSIGNED_SHORT                        = 0x1403
	VENDOR                                = 0x1f00
	VERSION                               = 0x1f02
	VERTEX_SHADER                         = 0x8b31
	WRITE_ONLY                            = 0x88b9
	ZERO                                  = 0

	// EXT_disjoint_timer_query
	TIME_ELAPSED_EXT = 0x88bf
	GPU_DISJOINT_EXT = 0x8fbb
)

// SPDX-License-Identifier: Unlicense OR MIT

package glsc2

type (
	Enum     uint32
	Boolean  uint8
	Bitfield uint32
	Int      int32
	Sizei    int32
	Uint     uint32
	Float    float32
	Intptr   int
	Sizeiptr int
)

const (
	NO_ERROR          = 0
	INVALID_ENUM      = 0x0500
	INVALID_VALUE     = 0x0501
	INVALID_OPERATION = 0x0502
	OUT_OF_MEMORY     = 0x0505
	CONTEXT_LOST      = 0x0507

	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	GUILTY_CONTEXT_RESET   = 0x8253
	INNOCENT_CONTEXT_RESET = 0x8254
	UNKNOWN_CONTEXT_RESET  = 0x8255

	VENDOR     = 0x1f00
	RENDERER   = 0x1f01
	VERSION    = 0x1f02
	EXTENSIONS = 0x1f03

	COLOR_BUFFER_BIT           = 0x4000
	TRIANGLES                  = 0x0004
	ARRAY_BUFFER               = 0x8892
	STATIC_DRAW                = 0x88e4
	FLOAT                      = 0x1406
	PROGRAM_BINARY_FORMATS     = 0x87ff
	NUM_PROGRAM_BINARY_FORMATS = 0x87fe
)

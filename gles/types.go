// SPDX-License-Identifier: Unlicense OR MIT

package gles

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
	Int64    int64
	Uint64   uint64
	Sync     uintptr
	Char     = byte
	Ubyte    = byte
)

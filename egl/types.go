// SPDX-License-Identifier: Unlicense OR MIT

package egl

type (
	Boolean uint32
	Int     int32
	Enum    uint32
	Attrib  int
	Time    uint64

	Display      uintptr
	Config       uintptr
	Context      uintptr
	Surface      uintptr
	ClientBuffer uintptr
	Image        uintptr
	Sync         uintptr
	Stream       uintptr
	Device       uintptr
	OutputLayer  uintptr
	OutputPort   uintptr

	NativeDisplayType uintptr
	NativeWindowType  uintptr
	NativePixmapType  uintptr
)

var (
	NoDisplay Display
	NoContext Context
	NoSurface Surface
	NoConfig  Config
	NoImage   Image
	NoSync    Sync

	DefaultDisplay NativeDisplayType
)

// Attribs returns an attribute list terminated by NONE, as expected by
// eglChooseConfig, eglCreateContext and the surface constructors.
func Attribs(kv ...Int) []Int {
	if len(kv)%2 != 0 {
		panic("egl: odd attribute list")
	}
	return append(kv[:len(kv):len(kv)], NONE)
}

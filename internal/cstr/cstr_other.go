// SPDX-License-Identifier: Unlicense OR MIT

//go:build !unix && !windows

package cstr

import (
	"errors"
	"strings"
	"unsafe"
)

// GoString copies the NUL-terminated string at p. A nil p yields "".
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*byte)(ptr) != 0; n++ {
		ptr = unsafe.Add(ptr, 1)
	}
	return string(unsafe.Slice(p, n))
}

// String returns a NUL-terminated copy of s.
func String(s string) (*byte, error) {
	if strings.IndexByte(s, 0) != -1 {
		return nil, errors.New("cstr: string contains NUL")
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0], nil
}

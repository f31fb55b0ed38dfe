// SPDX-License-Identifier: Unlicense OR MIT

package cstr

import syscall "golang.org/x/sys/windows"

// GoString copies the NUL-terminated string at p. A nil p yields "".
func GoString(p *byte) string {
	return syscall.BytePtrToString(p)
}

// String returns a NUL-terminated copy of s.
func String(s string) (*byte, error) {
	return syscall.BytePtrFromString(s)
}

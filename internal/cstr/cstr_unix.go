// SPDX-License-Identifier: Unlicense OR MIT

//go:build unix

package cstr

import "golang.org/x/sys/unix"

// GoString copies the NUL-terminated string at p. A nil p yields "".
func GoString(p *byte) string {
	return unix.BytePtrToString(p)
}

// String returns a NUL-terminated copy of s.
func String(s string) (*byte, error) {
	return unix.BytePtrFromString(s)
}

// SPDX-License-Identifier: Unlicense OR MIT

// Package cstr converts between Go strings and the NUL-terminated strings
// exchanged with native libraries.
package cstr

import "runtime"

// Must is like String but panics if s contains a NUL byte. It is meant for
// constant symbol and extension names.
func Must(s string) *byte {
	p, err := String(s)
	if err != nil {
		panic(err)
	}
	return p
}

// KeepAlive keeps v reachable until a native call that received a pointer
// derived from it has returned. See golang.org/issue/34474.
func KeepAlive(v any) {
	runtime.KeepAlive(v)
}

// SPDX-License-Identifier: Unlicense OR MIT

//go:build !(darwin || freebsd || linux || netbsd || windows)

package dl

import (
	"errors"
	"runtime"
)

var errUnsupported = errors.New("dl: dynamic loading is not supported on " + runtime.GOOS)

func platformOpen(path string) (uintptr, error) {
	return 0, errUnsupported
}

func platformLookup(handle uintptr, name string) (uintptr, error) {
	return 0, errUnsupported
}

func platformClose(handle uintptr) error {
	return errUnsupported
}

// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin || freebsd || linux || netbsd

package dl

import "github.com/ebitengine/purego"

func platformOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func platformLookup(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func platformClose(handle uintptr) error {
	return purego.Dlclose(handle)
}

// SPDX-License-Identifier: Unlicense OR MIT

package dl

import (
	syscall "golang.org/x/sys/windows"
)

func platformOpen(path string) (uintptr, error) {
	h, err := syscall.LoadLibraryEx(path, 0, syscall.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func platformLookup(handle uintptr, name string) (uintptr, error) {
	return syscall.GetProcAddress(syscall.Handle(handle), name)
}

func platformClose(handle uintptr) error {
	return syscall.FreeLibrary(syscall.Handle(handle))
}

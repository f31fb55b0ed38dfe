// SPDX-License-Identifier: Unlicense OR MIT

package egl

import "fmt"

// CallError is an error code reported by eglGetError.
type CallError struct {
	Code Int
}

var errorNames = map[Int]string{
	NOT_INITIALIZED:     "EGL_NOT_INITIALIZED",
	BAD_ACCESS:          "EGL_BAD_ACCESS",
	BAD_ALLOC:           "EGL_BAD_ALLOC",
	BAD_ATTRIBUTE:       "EGL_BAD_ATTRIBUTE",
	BAD_CONFIG:          "EGL_BAD_CONFIG",
	BAD_CONTEXT:         "EGL_BAD_CONTEXT",
	BAD_CURRENT_SURFACE: "EGL_BAD_CURRENT_SURFACE",
	BAD_DISPLAY:         "EGL_BAD_DISPLAY",
	BAD_MATCH:           "EGL_BAD_MATCH",
	BAD_NATIVE_PIXMAP:   "EGL_BAD_NATIVE_PIXMAP",
	BAD_NATIVE_WINDOW:   "EGL_BAD_NATIVE_WINDOW",
	BAD_PARAMETER:       "EGL_BAD_PARAMETER",
	BAD_SURFACE:         "EGL_BAD_SURFACE",
	CONTEXT_LOST:        "EGL_CONTEXT_LOST",
}

func (e *CallError) Error() string {
	if name, ok := errorNames[e.Code]; ok {
		return fmt.Sprintf("egl: %s (0x%x)", name, int32(e.Code))
	}
	return fmt.Sprintf("egl: error 0x%x", int32(e.Code))
}

// Error converts an eglGetError code to an error. EGL_SUCCESS is nil.
func Error(code Int) error {
	if code == SUCCESS {
		return nil
	}
	return &CallError{Code: code}
}

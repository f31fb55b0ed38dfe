// SPDX-License-Identifier: Unlicense OR MIT

package glsc2

import "fmt"

// CallError is an error code reported by glGetError.
type CallError struct {
	Code Enum
}

var errorNames = map[Enum]string{
	INVALID_ENUM:                  "GL_INVALID_ENUM",
	INVALID_VALUE:                 "GL_INVALID_VALUE",
	INVALID_OPERATION:             "GL_INVALID_OPERATION",
	OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	CONTEXT_LOST:                  "GL_CONTEXT_LOST",
}

func (e *CallError) Error() string {
	if name, ok := errorNames[e.Code]; ok {
		return fmt.Sprintf("glsc2: %s (0x%x)", name, uint32(e.Code))
	}
	return fmt.Sprintf("glsc2: error 0x%x", uint32(e.Code))
}

// Error converts a glGetError code to an error. GL_NO_ERROR is nil.
func Error(code Enum) error {
	if code == NO_ERROR {
		return nil
	}
	return &CallError{Code: code}
}

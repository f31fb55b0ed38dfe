// SPDX-License-Identifier: Unlicense OR MIT

package ocl

import "fmt"

// CallError is a status code returned by an OpenCL function.
type CallError struct {
	Code Int
}

var errorNames = map[Int]string{
	DEVICE_NOT_FOUND:              "CL_DEVICE_NOT_FOUND",
	DEVICE_NOT_AVAILABLE:          "CL_DEVICE_NOT_AVAILABLE",
	COMPILER_NOT_AVAILABLE:        "CL_COMPILER_NOT_AVAILABLE",
	MEM_OBJECT_ALLOCATION_FAILURE: "CL_MEM_OBJECT_ALLOCATION_FAILURE",
	OUT_OF_RESOURCES:              "CL_OUT_OF_RESOURCES",
	OUT_OF_HOST_MEMORY:            "CL_OUT_OF_HOST_MEMORY",
	BUILD_PROGRAM_FAILURE:         "CL_BUILD_PROGRAM_FAILURE",
	INVALID_VALUE:                 "CL_INVALID_VALUE",
	INVALID_DEVICE_TYPE:           "CL_INVALID_DEVICE_TYPE",
	INVALID_PLATFORM:              "CL_INVALID_PLATFORM",
	INVALID_DEVICE:                "CL_INVALID_DEVICE",
	INVALID_CONTEXT:               "CL_INVALID_CONTEXT",
	INVALID_COMMAND_QUEUE:         "CL_INVALID_COMMAND_QUEUE",
	INVALID_MEM_OBJECT:            "CL_INVALID_MEM_OBJECT",
	INVALID_PROGRAM:               "CL_INVALID_PROGRAM",
	INVALID_KERNEL:                "CL_INVALID_KERNEL",
	INVALID_OPERATION:             "CL_INVALID_OPERATION",
	PLATFORM_NOT_FOUND_KHR:        "CL_PLATFORM_NOT_FOUND_KHR",
}

func (e *CallError) Error() string {
	if name, ok := errorNames[e.Code]; ok {
		return fmt.Sprintf("ocl: %s (%d)", name, int32(e.Code))
	}
	return fmt.Sprintf("ocl: error %d", int32(e.Code))
}

// Error converts a status code to an error. CL_SUCCESS is nil.
func Error(code Int) error {
	if code == SUCCESS {
		return nil
	}
	return &CallError{Code: code}
}

// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"regexp"
	"strings"
)

// Base types map C type names to Go. "void" marks a type only usable
// behind a pointer that becomes unsafe.Pointer, as does "opaque".
var glTypes = map[string]string{
	"GLenum":         "Enum",
	"GLboolean":      "Boolean",
	"GLbitfield":     "Bitfield",
	"GLbyte":         "int8",
	"GLshort":        "int16",
	"GLint":          "Int",
	"GLsizei":        "Sizei",
	"GLubyte":        "byte",
	"GLushort":       "uint16",
	"GLuint":         "Uint",
	"GLfloat":        "Float",
	"GLclampf":       "Float",
	"GLfixed":        "Int",
	"GLintptr":       "Intptr",
	"GLsizeiptr":     "Sizeiptr",
	"GLchar":         "byte",
	"GLint64":        "Int64",
	"GLuint64":       "Uint64",
	"GLsync":         "Sync",
	"GLDEBUGPROC":    "uintptr",
	"GLDEBUGPROCKHR": "uintptr",
	"GLeglImageOES":  "unsafe.Pointer",
	"GLvoid":         "void",
	"void":           "void",
	"char":           "byte",
	"float":          "float32",
	"int":            "int32",
}

var eglTypes = map[string]string{
	"EGLBoolean":                 "Boolean",
	"EGLint":                     "Int",
	"EGLenum":                    "Enum",
	"EGLAttrib":                  "Attrib",
	"EGLAttribKHR":               "Attrib",
	"EGLDisplay":                 "Display",
	"EGLConfig":                  "Config",
	"EGLContext":                 "Context",
	"EGLSurface":                 "Surface",
	"EGLClientBuffer":            "ClientBuffer",
	"EGLImage":                   "Image",
	"EGLImageKHR":                "Image",
	"EGLSync":                    "Sync",
	"EGLSyncKHR":                 "Sync",
	"EGLSyncNV":                  "Sync",
	"EGLStreamKHR":               "Stream",
	"EGLDeviceEXT":               "Device",
	"EGLOutputLayerEXT":          "OutputLayer",
	"EGLOutputPortEXT":           "OutputPort",
	"EGLLabelKHR":                "unsafe.Pointer",
	"EGLObjectKHR":               "unsafe.Pointer",
	"EGLNativeDisplayType":       "NativeDisplayType",
	"EGLNativeWindowType":        "NativeWindowType",
	"EGLNativePixmapType":        "NativePixmapType",
	"EGLNativeFileDescriptorKHR": "int32",
	"EGLTime":                    "Time",
	"EGLTimeKHR":                 "Time",
	"EGLTimeNV":                  "Time",
	"EGLuint64KHR":               "uint64",
	"EGLuint64NV":                "uint64",
	"EGLnsecsANDROID":            "int64",
	"EGLDEBUGPROCKHR":            "uintptr",
	"EGLSetBlobFuncANDROID":      "uintptr",
	"EGLGetBlobFuncANDROID":      "uintptr",
	"EGLClientPixmapHI":          "opaque",
	"__eglMustCastToProperFunctionPointerType": "uintptr",
	"int":  "int32",
	"char": "byte",
	"void": "void",
}

var vkTypes = map[string]string{
	"uint8_t":            "uint8",
	"uint32_t":           "uint32",
	"int32_t":            "int32",
	"uint64_t":           "uint64",
	"size_t":             "uintptr",
	"float":              "float32",
	"int":                "int32",
	"char":               "byte",
	"void":               "void",
	"VkBool32":           "Bool32",
	"VkDeviceSize":       "DeviceSize",
	"VkDeviceAddress":    "uint64",
	"VkResult":           "Result",
	"PFN_vkVoidFunction": "uintptr",
	"VisualID":           "uintptr",
	"xcb_visualid_t":     "uint32",
	"Display":            "opaque",
	"xcb_connection_t":   "opaque",
	"wl_display":         "opaque",
	"AHardwareBuffer":    "opaque",
}

var clTypes = map[string]string{
	"cl_int":                       "Int",
	"cl_uint":                      "Uint",
	"cl_ulong":                     "Ulong",
	"cl_bool":                      "Bool",
	"cl_bitfield":                  "Bitfield",
	"cl_GLint":                     "Int",
	"cl_GLuint":                    "Uint",
	"cl_GLenum":                    "Uint",
	"cl_platform_id":               "PlatformID",
	"cl_device_id":                 "DeviceID",
	"cl_context":                   "Context",
	"cl_command_queue":             "CommandQueue",
	"cl_mem":                       "Mem",
	"cl_program":                   "Program",
	"cl_kernel":                    "Kernel",
	"cl_event":                     "Event",
	"cl_sampler":                   "Sampler",
	"cl_context_properties":        "ContextProperties",
	"cl_pipe_properties":           "Intptr",
	"cl_device_partition_property": "Intptr",
	"cl_queue_properties":          "Bitfield",
	"cl_sampler_properties":        "Bitfield",
	"cl_image_format":              "ImageFormat",
	"cl_image_desc":                "ImageDesc",
	"size_t":                       "uintptr",
	"unsigned char":                "byte",
	"char":                         "byte",
	"int":                          "int32",
	"void":                         "void",
}

// clInfoRE matches the cl_uint parameter selectors and enumerations.
var clInfoRE = regexp.MustCompile(`^cl_\w+_(info|type|mode)$`)

// clFlagsRE matches the cl_bitfield typedefs.
var clFlagsRE = regexp.MustCompile(`^cl_\w+_(flags|properties)$|^cl_device_type$`)

func clBase(name string) (string, error) {
	if t, ok := clTypes[name]; ok {
		return t, nil
	}
	switch {
	case clFlagsRE.MatchString(name):
		return "Bitfield", nil
	case clInfoRE.MatchString(name):
		return "Uint", nil
	}
	return "", fmt.Errorf("unknown type %s", name)
}

// Vulkan types declared in package vk under their name without the Vk
// prefix.
var vkNamed = []string{
	"Instance", "PhysicalDevice", "Device", "Queue", "CommandBuffer",
	"Semaphore", "Fence", "DeviceMemory", "Buffer", "Image", "Event",
	"QueryPool", "BufferView", "ImageView", "ShaderModule", "PipelineCache",
	"PipelineLayout", "RenderPass", "Pipeline", "DescriptorSetLayout",
	"Sampler", "DescriptorPool", "DescriptorSet", "Framebuffer",
	"CommandPool", "SamplerYcbcrConversion", "DescriptorUpdateTemplate",
	"SurfaceKHR", "SwapchainKHR", "DisplayKHR", "DisplayModeKHR",
	"DebugReportCallbackEXT", "DebugUtilsMessengerEXT", "ValidationCacheEXT",
	"Format", "ImageType", "ImageTiling", "PipelineBindPoint", "IndexType",
	"ImageLayout", "Filter", "SubpassContents", "DebugReportObjectTypeEXT",
	"ShaderInfoTypeAMD", "PresentModeKHR",
}

func init() {
	for _, n := range vkNamed {
		vkTypes["Vk"+n] = n
	}
}

var flagsRE = regexp.MustCompile(`^Vk\w*(Flags|FlagBits)\w*$`)

func vkBase(name string) (string, error) {
	if t, ok := vkTypes[name]; ok {
		return t, nil
	}
	if flagsRE.MatchString(name) {
		return "Flags", nil
	}
	// Structures and other types are only passed by pointer.
	if strings.HasPrefix(name, "Vk") {
		return "opaque", nil
	}
	return "", fmt.Errorf("unknown type %s", name)
}

func tableBase(m map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if t, ok := m[name]; ok {
			return t, nil
		}
		return "", fmt.Errorf("unknown type %s", name)
	}
}

// baseTypes returns the type mapping of api.
func baseTypes(api string) (func(string) (string, error), error) {
	switch api {
	case "egl":
		return tableBase(eglTypes), nil
	case "gles1", "gles2", "glsc2", "gl":
		return tableBase(glTypes), nil
	case "vulkan":
		return vkBase, nil
	case "opencl":
		return clBase, nil
	}
	return nil, fmt.Errorf("unsupported API %q", api)
}

// goType converts a C declaration without its name to a Go type. void
// converts to the empty string and function pointers to uintptr.
func goType(c string, base func(string) (string, error)) (string, error) {
	if strings.Contains(c, "(") {
		return "uintptr", nil
	}
	c = arrayRE.ReplaceAllString(c, "*")
	c = strings.ReplaceAll(c, "unsigned ", "unsigned_")
	stars := strings.Count(c, "*")
	var toks []string
	for _, t := range strings.FieldsFunc(c, func(r rune) bool { return r == ' ' || r == '*' }) {
		if t != "const" && t != "struct" {
			toks = append(toks, t)
		}
	}
	if len(toks) != 1 {
		return "", fmt.Errorf("unsupported C type %q", c)
	}
	g, err := base(strings.Replace(toks[0], "unsigned_", "unsigned ", 1))
	if err != nil {
		return "", err
	}
	switch g {
	case "void":
		if stars == 0 {
			return "", nil
		}
		return strings.Repeat("*", stars-1) + "unsafe.Pointer", nil
	case "opaque":
		if stars == 0 {
			return "", fmt.Errorf("%s passed by value", toks[0])
		}
		return strings.Repeat("*", stars-1) + "unsafe.Pointer", nil
	}
	return strings.Repeat("*", stars) + g, nil
}

var renames = map[string]string{
	"type":      "typ",
	"func":      "fn",
	"range":     "rng",
	"map":       "m",
	"default":   "def",
	"select":    "sel",
	"var":       "v",
	"interface": "iface",
	"chan":      "ch",
	"go":        "g",
	"package":   "pkg",
	"import":    "imp",
	"return":    "ret",
	"const":     "c",
	"string":    "str",
	"byte":      "b",
	"int":       "i",
	"uintptr":   "addr",
}

// paramName converts a C parameter name to a Go identifier that shadows
// neither keywords nor predeclared types.
func paramName(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p != "" {
			b.WriteString(strings.ToUpper(p[:1]) + p[1:])
		}
	}
	name := b.String()
	if r, ok := renames[name]; ok {
		return r
	}
	return name
}

// signature returns the Go function type of c.
func signature(c *command, base func(string) (string, error)) (string, error) {
	var params []string
	for i, p := range c.Params {
		t, err := goType(p.C, base)
		if err != nil {
			return "", fmt.Errorf("%s: parameter %d: %w", c.Symbol(), i, err)
		}
		if t == "" {
			return "", fmt.Errorf("%s: parameter %d is void", c.Symbol(), i)
		}
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("p%d", i)
		}
		params = append(params, paramName(name)+" "+t)
	}
	ret, err := goType(c.Proto.C, base)
	if err != nil {
		return "", fmt.Errorf("%s: result: %w", c.Symbol(), err)
	}
	sig := "func(" + strings.Join(params, ", ") + ")"
	if ret != "" {
		sig += " " + ret
	}
	return sig, nil
}

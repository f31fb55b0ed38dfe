// SPDX-License-Identifier: Unlicense OR MIT

package gles

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/pvrsdk/native/internal/cstr"
)

// CreateProgram compiles and links a program from vertex and fragment
// shader sources. attribs[i] is bound to attribute location i.
func CreateProgram(f *Functions20, vsSrc, fsSrc string, attribs []string) (Uint, error) {
	vs, err := createShader(f, VERTEX_SHADER, vsSrc)
	if err != nil {
		return 0, err
	}
	defer f.DeleteShader(vs)
	fs, err := createShader(f, FRAGMENT_SHADER, fsSrc)
	if err != nil {
		return 0, err
	}
	defer f.DeleteShader(fs)
	prog := f.CreateProgram()
	if prog == 0 {
		return 0, errors.New("glCreateProgram failed")
	}
	f.AttachShader(prog, vs)
	f.AttachShader(prog, fs)
	for i, a := range attribs {
		name := cstr.Must(a)
		f.BindAttribLocation(prog, Uint(i), name)
		cstr.KeepAlive(name)
	}
	f.LinkProgram(prog)
	var status Int
	f.GetProgramiv(prog, LINK_STATUS, &status)
	if status == FALSE {
		log := programInfoLog(f, prog)
		f.DeleteProgram(prog)
		return 0, fmt.Errorf("program link failed: %s", strings.TrimSpace(log))
	}
	return prog, nil
}

func createShader(f *Functions20, typ Enum, src string) (Uint, error) {
	sh := f.CreateShader(typ)
	if sh == 0 {
		return 0, errors.New("glCreateShader failed")
	}
	csrc := cstr.Must(src)
	f.ShaderSource(sh, 1, &csrc, nil)
	cstr.KeepAlive(csrc)
	f.CompileShader(sh)
	var status Int
	f.GetShaderiv(sh, COMPILE_STATUS, &status)
	if status == FALSE {
		log := shaderInfoLog(f, sh)
		f.DeleteShader(sh)
		return 0, fmt.Errorf("shader compilation failed: %s", strings.TrimSpace(log))
	}
	return sh, nil
}

func shaderInfoLog(f *Functions20, sh Uint) string {
	var n Int
	f.GetShaderiv(sh, INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	f.GetShaderInfoLog(sh, Sizei(n), nil, &buf[0])
	return GoString(&buf[0])
}

func programInfoLog(f *Functions20, prog Uint) string {
	var n Int
	f.GetProgramiv(prog, INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	f.GetProgramInfoLog(prog, Sizei(n), nil, &buf[0])
	return GoString(&buf[0])
}

// GoString converts a string returned by glGetString. A nil pointer is the
// empty string.
func GoString(p *byte) string {
	return cstr.GoString(p)
}

// BytesView returns the bytes backing s.
func BytesView[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}

// ParseVersion parses a GL_VERSION string such as "OpenGL ES 3.2 build 1.13".
func ParseVersion(glVer string) ([2]int, error) {
	var ver [2]int
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	} else if _, err := fmt.Sscanf(glVer, "OpenGL SC %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	} else if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	}
	return ver, fmt.Errorf("failed to parse OpenGL ES version (%s)", glVer)
}

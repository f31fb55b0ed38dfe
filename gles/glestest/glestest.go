// SPDX-License-Identifier: Unlicense OR MIT

// Package glestest implements a minimal in-process OpenGL ES driver on top
// of bindtest. It tracks object lifetimes and records draw calls instead of
// rendering.
package glestest

import (
	"strings"
	"sync"
	"unsafe"

	"github.com/pvrsdk/native/bind/bindtest"
	"github.com/pvrsdk/native/gles"
	"github.com/pvrsdk/native/internal/cstr"
)

// Draw records a glDrawArrays call.
type Draw struct {
	Mode    gles.Enum
	First   gles.Int
	Count   gles.Sizei
	Program gles.Uint
}

// Driver is a fake OpenGL ES implementation.
type Driver struct {
	Lib *bindtest.Library

	mu         sync.Mutex
	strings    map[gles.Enum]*byte
	indexed    []*byte
	next       gles.Uint
	buffers    map[gles.Uint][]byte
	bound      gles.Uint
	shaders    map[gles.Uint]string
	programs   map[gles.Uint]bool
	current    gles.Uint
	clearColor [4]gles.Float
	clears     []gles.Bitfield
	draws      []Draw
	err        gles.Enum
	badShader  string
	integers   map[gles.Enum]gles.Int
}

// New returns a driver reporting version as GL_VERSION and extensions as
// GL_EXTENSIONS. An empty extensions string makes glGetString(GL_EXTENSIONS)
// return NULL, leaving the list to glGetStringi.
func New(version, extensions string) *Driver {
	d := &Driver{
		strings:  map[gles.Enum]*byte{gles.VERSION: cstr.Must(version)},
		buffers:  make(map[gles.Uint][]byte),
		shaders:  make(map[gles.Uint]string),
		programs: make(map[gles.Uint]bool),
	}
	if extensions != "" {
		d.strings[gles.EXTENSIONS] = cstr.Must(extensions)
	}
	d.Lib = bindtest.NewLibrary("libGLESv2.so", map[string]any{
		"glGetString":                d.getString,
		"glGetIntegerv":              d.getIntegerv,
		"glGetError":                 d.getError,
		"glClearColor":               d.setClearColor,
		"glClear":                    d.clear,
		"glViewport":                 func(x, y gles.Int, w, h gles.Sizei) {},
		"glGenBuffers":               d.genBuffers,
		"glBindBuffer":               d.bindBuffer,
		"glBufferData":               d.bufferData,
		"glDeleteBuffers":            d.deleteBuffers,
		"glCreateShader":             d.createShader,
		"glShaderSource":             d.shaderSource,
		"glCompileShader":            func(sh gles.Uint) {},
		"glGetShaderiv":              d.getShaderiv,
		"glGetShaderInfoLog":         d.getShaderInfoLog,
		"glDeleteShader":             d.deleteShader,
		"glCreateProgram":            d.createProgram,
		"glAttachShader":             func(prog, sh gles.Uint) {},
		"glBindAttribLocation":       func(prog, index gles.Uint, name *byte) {},
		"glLinkProgram":              func(prog gles.Uint) {},
		"glGetProgramiv":             d.getProgramiv,
		"glGetProgramInfoLog":        d.getProgramInfoLog,
		"glUseProgram":               d.useProgram,
		"glDeleteProgram":            d.deleteProgram,
		"glGetUniformLocation":       func(prog gles.Uint, name *byte) gles.Int { return 0 },
		"glUniformMatrix4fv":         func(loc gles.Int, n gles.Sizei, transpose gles.Boolean, v *gles.Float) {},
		"glEnableVertexAttribArray":  func(i gles.Uint) {},
		"glDisableVertexAttribArray": func(i gles.Uint) {},
		"glVertexAttribPointer": func(i gles.Uint, size gles.Int, typ gles.Enum, norm gles.Boolean, stride gles.Sizei, p unsafe.Pointer) {
		},
		"glDrawArrays": d.drawArrays,
	})
	return d
}

// AddES30 exports the ES 3.0 glGetStringi, listing exts by index.
func (d *Driver) AddES30(exts ...string) {
	d.mu.Lock()
	for _, e := range exts {
		d.indexed = append(d.indexed, cstr.Must(e))
	}
	d.mu.Unlock()
	d.Lib.Define("glGetStringi", d.getStringi)
}

// SetInteger makes glGetIntegerv report v for pname, whatever the driver
// state.
func (d *Driver) SetInteger(pname gles.Enum, v gles.Int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.integers == nil {
		d.integers = make(map[gles.Enum]gles.Int)
	}
	d.integers[pname] = v
}

// FailShader makes compilation fail for every source containing marker.
func (d *Driver) FailShader(marker string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.badShader = marker
}

// SetError sets the code returned by the next glGetError.
func (d *Driver) SetError(code gles.Enum) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = code
}

// Buffer returns the contents of a live buffer object.
func (d *Driver) Buffer(b gles.Uint) ([]byte, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, ok := d.buffers[b]
	return data, ok
}

// Live returns the number of live buffers, shaders and programs.
func (d *Driver) Live() (buffers, shaders, programs int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.buffers), len(d.shaders), len(d.programs)
}

// Clears returns the masks passed to glClear.
func (d *Driver) Clears() []gles.Bitfield {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]gles.Bitfield(nil), d.clears...)
}

// ClearColor returns the last glClearColor arguments.
func (d *Driver) ClearColor() [4]gles.Float {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clearColor
}

// Draws returns the recorded draw calls.
func (d *Driver) Draws() []Draw {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Draw(nil), d.draws...)
}

func (d *Driver) getString(name gles.Enum) *byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.strings[name]
}

func (d *Driver) getStringi(name gles.Enum, i gles.Uint) *byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	if name != gles.EXTENSIONS || int(i) >= len(d.indexed) {
		d.err = gles.INVALID_VALUE
		return nil
	}
	return d.indexed[i]
}

func (d *Driver) getIntegerv(pname gles.Enum, v *gles.Int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n, ok := d.integers[pname]; ok {
		*v = n
		return
	}
	switch pname {
	case gles.NUM_EXTENSIONS:
		*v = gles.Int(len(d.indexed))
	default:
		d.err = gles.INVALID_ENUM
	}
}

func (d *Driver) getError() gles.Enum {
	d.mu.Lock()
	defer d.mu.Unlock()
	code := d.err
	d.err = gles.NO_ERROR
	return code
}

func (d *Driver) setClearColor(r, g, b, a gles.Float) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearColor = [4]gles.Float{r, g, b, a}
}

func (d *Driver) clear(mask gles.Bitfield) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clears = append(d.clears, mask)
}

func (d *Driver) alloc() gles.Uint {
	d.next++
	return d.next
}

func (d *Driver) genBuffers(n gles.Sizei, out *gles.Uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := unsafe.Slice(out, n)
	for i := range ids {
		ids[i] = d.alloc()
		d.buffers[ids[i]] = nil
	}
}

func (d *Driver) bindBuffer(target gles.Enum, b gles.Uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bound = b
}

func (d *Driver) bufferData(target gles.Enum, size gles.Sizeiptr, data unsafe.Pointer, usage gles.Enum) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.buffers[d.bound]; !ok {
		d.err = gles.INVALID_OPERATION
		return
	}
	buf := make([]byte, size)
	if data != nil {
		copy(buf, unsafe.Slice((*byte)(data), size))
	}
	d.buffers[d.bound] = buf
}

func (d *Driver) deleteBuffers(n gles.Sizei, ids *gles.Uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range unsafe.Slice(ids, n) {
		delete(d.buffers, id)
	}
}

func (d *Driver) createShader(typ gles.Enum) gles.Uint {
	d.mu.Lock()
	defer d.mu.Unlock()
	sh := d.alloc()
	d.shaders[sh] = ""
	return sh
}

func (d *Driver) shaderSource(sh gles.Uint, count gles.Sizei, src **byte, length *gles.Int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var sb strings.Builder
	for _, p := range unsafe.Slice(src, count) {
		sb.WriteString(cstr.GoString(p))
	}
	d.shaders[sh] = sb.String()
}

func (d *Driver) compiles(sh gles.Uint) bool {
	return d.badShader == "" || !strings.Contains(d.shaders[sh], d.badShader)
}

func (d *Driver) getShaderiv(sh gles.Uint, pname gles.Enum, v *gles.Int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch pname {
	case gles.COMPILE_STATUS:
		*v = gles.FALSE
		if d.compiles(sh) {
			*v = gles.TRUE
		}
	case gles.INFO_LOG_LENGTH:
		*v = gles.Int(len(compileLog) + 1)
	}
}

const compileLog = "ERROR: 0:1: syntax error\n"

func (d *Driver) getShaderInfoLog(sh gles.Uint, size gles.Sizei, length *gles.Sizei, out *byte) {
	buf := unsafe.Slice(out, size)
	n := copy(buf[:len(buf)-1], compileLog)
	buf[n] = 0
}

func (d *Driver) deleteShader(sh gles.Uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.shaders, sh)
}

func (d *Driver) createProgram() gles.Uint {
	d.mu.Lock()
	defer d.mu.Unlock()
	p := d.alloc()
	d.programs[p] = true
	return p
}

func (d *Driver) getProgramiv(prog gles.Uint, pname gles.Enum, v *gles.Int) {
	switch pname {
	case gles.LINK_STATUS:
		*v = gles.TRUE
	case gles.INFO_LOG_LENGTH:
		*v = 0
	}
}

func (d *Driver) getProgramInfoLog(prog gles.Uint, size gles.Sizei, length *gles.Sizei, out *byte) {}

func (d *Driver) useProgram(prog gles.Uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = prog
}

func (d *Driver) deleteProgram(prog gles.Uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.programs, prog)
	if d.current == prog {
		d.current = 0
	}
}

func (d *Driver) drawArrays(mode gles.Enum, first gles.Int, count gles.Sizei) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draws = append(d.draws, Draw{Mode: mode, First: first, Count: count, Program: d.current})
}

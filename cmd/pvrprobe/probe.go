// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/egl"
	"github.com/pvrsdk/native/gles"
	"github.com/pvrsdk/native/glsc2"
	"github.com/pvrsdk/native/internal/cstr"
	"github.com/pvrsdk/native/internal/dl"
	"github.com/pvrsdk/native/ocl"
	"github.com/pvrsdk/native/vk"
)

// tierReport is the outcome of loading one table.
type tierReport struct {
	Name     string
	Total    int
	Missing  []string
	Optional bool
}

func (t tierReport) Resolved() int {
	return t.Total - len(t.Missing)
}

// apiReport is the outcome of probing one API.
type apiReport struct {
	API        dl.API
	Library    string
	Err        error
	Version    string
	Tiers      []tierReport
	Extensions []string
}

// opener opens the library of an API.
type opener func(api dl.API) (bind.Library, error)

type prober struct {
	open opener
	reg  bind.Registrar
	log  *zap.Logger
}

func tier[ID constraints.Integer, F any](t *bind.Table[ID, F], optional bool) tierReport {
	return tierReport{Name: t.Tier(), Total: t.Len(), Missing: t.Missing(), Optional: optional}
}

func (p *prober) source(api dl.API, r *apiReport) func() (bind.Source, error) {
	return func() (bind.Source, error) {
		lib, err := p.open(api)
		if err != nil {
			return nil, err
		}
		r.Library = lib.Name()
		return lib, nil
	}
}

func (p *prober) probe(api dl.API) apiReport {
	r := apiReport{API: api}
	switch api {
	case dl.EGL:
		p.probeEGL(&r)
	case dl.GLES:
		p.probeGLES(&r)
	case dl.GLSC2:
		p.probeGLSC2(&r)
	case dl.Vulkan:
		p.probeVulkan(&r)
	case dl.OpenCL:
		p.probeOpenCL(&r)
	default:
		r.Err = fmt.Errorf("unknown API %v", api)
	}
	return r
}

func (p *prober) probeEGL(r *apiReport) {
	l := egl.NewLoader(egl.WithSource(p.source(dl.EGL, r)), egl.WithRegistrar(p.reg), egl.WithLogger(p.log))
	defer l.Close()
	f, err := l.Core()
	if err != nil {
		r.Err = err
		return
	}
	if _, err := l.Extensions(); err != nil {
		r.Err = err
	}
	r.Tiers = []tierReport{tier(l.CoreTable(), false), tier(l.ExtensionTable(), true)}
	if l.CoreTable().Require(egl.CoreGetDisplay, egl.CoreInitialize, egl.CoreQueryString, egl.CoreTerminate) != nil {
		return
	}
	dpy := f.GetDisplay(egl.DefaultDisplay)
	if dpy == egl.NoDisplay {
		return
	}
	var major, minor egl.Int
	if f.Initialize(dpy, &major, &minor) != egl.TRUE {
		r.Err = fmt.Errorf("eglInitialize failed: %w", egl.Error(f.GetError()))
		return
	}
	defer f.Terminate(dpy)
	r.Version = fmt.Sprintf("%d.%d", major, minor)
	if ext := f.QueryString(dpy, egl.EXTENSIONS); ext != nil {
		r.Extensions = strings.Fields(cstr.GoString(ext))
	}
}

func (p *prober) probeGLES(r *apiReport) {
	// Extension functions need eglGetProcAddress; probe them through the
	// configured EGL library.
	var eglReport apiReport
	el := egl.NewLoader(egl.WithSource(p.source(dl.EGL, &eglReport)), egl.WithRegistrar(p.reg), egl.WithLogger(p.log))
	defer el.Close()
	l := gles.NewLoader(gles.WithSource(p.source(dl.GLES, r)), gles.WithEGL(el), gles.WithRegistrar(p.reg), gles.WithLogger(p.log))
	defer l.Close()
	if _, err := l.ES20(); err != nil {
		r.Err = err
		return
	}
	// Later tiers and extensions are optional; their tables report what
	// is missing.
	_, _ = l.ES30()
	_, _ = l.ES31()
	_, _ = l.ES32()
	_, _ = l.Extensions()
	r.Tiers = []tierReport{
		tier(l.ES20Table(), false),
		tier(l.ES30Table(), true),
		tier(l.ES31Table(), true),
		tier(l.ES32Table(), true),
		tier(l.ExtensionTable(), true),
	}
	if _, err := el.Core(); err != nil {
		r.Err = fmt.Errorf("extensions unavailable: %w", err)
	}
}

func (p *prober) probeGLSC2(r *apiReport) {
	l := glsc2.NewLoader(glsc2.WithSource(p.source(dl.GLSC2, r)), glsc2.WithRegistrar(p.reg), glsc2.WithLogger(p.log))
	defer l.Close()
	if _, err := l.Functions(); err != nil {
		r.Err = err
		return
	}
	r.Tiers = []tierReport{tier(l.Table(), false)}
}

// extensionProperties is VkExtensionProperties.
type extensionProperties struct {
	Name        [256]byte
	SpecVersion uint32
}

func (p *prober) probeVulkan(r *apiReport) {
	l := vk.NewLoader(vk.WithSource(p.source(dl.Vulkan, r)), vk.WithRegistrar(p.reg), vk.WithLogger(p.log))
	defer l.Close()
	b, err := l.Bindings()
	var missing []string
	var se *bind.SymbolError
	if errors.As(err, &se) {
		missing = se.Names
	} else if err != nil {
		r.Err = err
		return
	}
	global := vk.GlobalCommands()
	switch {
	case b.GetInstanceProcAddr == nil:
		missing = global
	case b.EnumerateInstanceVersion == nil:
		missing = append(missing, "vkEnumerateInstanceVersion")
	}
	r.Tiers = []tierReport{{Name: "Vulkan global", Total: len(global), Missing: missing}}
	if err != nil {
		r.Err = err
		return
	}
	if v, err := b.InstanceVersion(); err == nil {
		r.Version = v.String()
	}
	var n uint32
	if err := b.EnumerateInstanceExtensionProperties(nil, &n, nil).Err(); err != nil || n == 0 {
		r.Err = err
		return
	}
	props := make([]extensionProperties, n)
	if err := b.EnumerateInstanceExtensionProperties(nil, &n, unsafe.Pointer(&props[0])).Err(); err != nil {
		r.Err = err
		return
	}
	for _, e := range props[:n] {
		r.Extensions = append(r.Extensions, cstr.GoString(&e.Name[0]))
	}
	slices.Sort(r.Extensions)
}

// probeOpenCL reports the version and extensions of the first platform.
func (p *prober) probeOpenCL(r *apiReport) {
	l := ocl.NewLoader(ocl.WithSource(p.source(dl.OpenCL, r)), ocl.WithRegistrar(p.reg), ocl.WithLogger(p.log))
	defer l.Close()
	if _, err := l.Functions(); err != nil {
		r.Err = err
		return
	}
	_, _ = l.Functions20()
	_, _ = l.Sharing()
	r.Tiers = []tierReport{
		tier(l.Table(), false),
		tier(l.Table20(), true),
		tier(l.SharingTable(), true),
	}
	ids, err := l.Platforms()
	if err != nil || len(ids) == 0 {
		r.Err = err
		return
	}
	if v, err := l.PlatformInfo(ids[0], ocl.PLATFORM_VERSION); err == nil {
		r.Version = v
	}
	ext, err := l.PlatformInfo(ids[0], ocl.PLATFORM_EXTENSIONS)
	if err != nil {
		r.Err = err
		return
	}
	r.Extensions = strings.Fields(ext)
	slices.Sort(r.Extensions)
}

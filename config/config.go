// SPDX-License-Identifier: Unlicense OR MIT

// Package config holds the settings that decide which native libraries are
// loaded and how loading is logged.
//
// Settings come from an optional TOML file:
//
//	log_level = "debug"
//
//	[vulkan]
//	names = ["libvulkan.so.1"]
//	search_paths = ["/opt/vulkan/lib"]
//
// and are then overridden by the environment variables listed by EnvVars.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/maps"

	"github.com/pvrsdk/native/internal/dl"
)

// Library configures how one API's library is located. Empty fields fall
// back to the platform defaults.
type Library struct {
	Names       []string `toml:"names,omitempty"`
	SearchPaths []string `toml:"search_paths,omitempty"`
}

type Config struct {
	LogLevel string  `toml:"log_level,omitempty"`
	EGL      Library `toml:"egl,omitempty"`
	GLES     Library `toml:"gles,omitempty"`
	GLSC2    Library `toml:"glsc2,omitempty"`
	Vulkan   Library `toml:"vulkan,omitempty"`
	OpenCL   Library `toml:"opencl,omitempty"`
}

const (
	EnvConfig   = "PVR_CONFIG"
	EnvLogLevel = "PVR_LOG_LEVEL"
)

// libraryEnv maps the variables overriding library names, separated by
// semicolons, to their API.
var libraryEnv = map[string]dl.API{
	"PVR_EGL_LIBRARY":    dl.EGL,
	"PVR_GLES_LIBRARY":   dl.GLES,
	"PVR_GLSC2_LIBRARY":  dl.GLSC2,
	"PVR_VULKAN_LIBRARY": dl.Vulkan,
	"PVR_OPENCL_LIBRARY": dl.OpenCL,
}

// EnvVars returns the names of every environment variable read by FromEnv,
// sorted.
func EnvVars() []string {
	vars := append(maps.Keys(libraryEnv), EnvConfig, EnvLogLevel, "VULKAN_SDK")
	slices.Sort(vars)
	return vars
}

// Parse decodes a TOML document. Unknown keys are an error.
func Parse(data []byte) (Config, error) {
	var c Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// Load reads and parses the TOML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Marshal encodes c as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// FromEnv loads the file named by PVR_CONFIG, if set, and applies the
// environment overrides.
func FromEnv() (Config, error) {
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (Config, error) {
	return loadFile(getenv(EnvConfig), getenv)
}

// LoadFile is like FromEnv but reads path instead of the file named by
// PVR_CONFIG. An empty path falls back to FromEnv.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return FromEnv()
	}
	return loadFile(path, os.Getenv)
}

func loadFile(path string, getenv func(string) string) (Config, error) {
	var c Config
	if path != "" {
		var err error
		if c, err = Load(path); err != nil {
			return Config{}, err
		}
	}
	return c.WithEnv(getenv), nil
}

// WithEnv returns c with the environment overrides read through getenv
// applied.
func (c Config) WithEnv(getenv func(string) string) Config {
	if lvl := strings.TrimSpace(getenv(EnvLogLevel)); lvl != "" {
		c.LogLevel = lvl
	}
	for key, api := range libraryEnv {
		names := splitList(getenv(key))
		if len(names) == 0 {
			continue
		}
		lib := c.library(api)
		lib.Names = names
	}
	return c
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (c *Config) library(api dl.API) *Library {
	switch api {
	case dl.EGL:
		return &c.EGL
	case dl.GLES:
		return &c.GLES
	case dl.GLSC2:
		return &c.GLSC2
	case dl.Vulkan:
		return &c.Vulkan
	case dl.OpenCL:
		return &c.OpenCL
	}
	panic(fmt.Sprintf("config: unknown API %v", api))
}

// Library returns the effective names and search paths of api on the
// running platform: configured names replace the defaults, configured
// search paths are tried before the defaults.
func (c Config) Library(api dl.API) Library {
	return c.resolve(api, runtime.GOOS, os.Getenv)
}

func (c Config) resolve(api dl.API, goos string, getenv func(string) string) Library {
	lib := *c.library(api)
	out := Library{
		Names:       slices.Clone(lib.Names),
		SearchPaths: slices.Clone(lib.SearchPaths),
	}
	if len(out.Names) == 0 {
		out.Names = dl.Candidates(api, goos)
	}
	out.SearchPaths = append(out.SearchPaths, dl.SearchPaths(api, goos, getenv)...)
	return out
}

// Open opens api's library as configured.
func (c Config) Open(api dl.API) (*dl.Library, error) {
	lib := c.Library(api)
	return dl.Open(lib.Names, lib.SearchPaths)
}

// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvrsdk/native/internal/dl"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
log_level = "debug"

[gles]
names = ["libGLESv2_PVR_MESA.so"]

[vulkan]
search_paths = ["/opt/vulkan/lib"]
`))
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, []string{"libGLESv2_PVR_MESA.so"}, c.GLES.Names)
	assert.Equal(t, []string{"/opt/vulkan/lib"}, c.Vulkan.SearchPaths)
	assert.Empty(t, c.EGL.Names)
}

func TestParseUnknownKey(t *testing.T) {
	_, err := Parse([]byte("[egl]\nname = \"libEGL.so\"\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("log_level = \n"))
	assert.ErrorContains(t, err, "line 1")
}

func TestWithEnv(t *testing.T) {
	c := Config{LogLevel: "info", EGL: Library{Names: []string{"libEGL.so"}}}
	c = c.WithEnv(env(map[string]string{
		"PVR_LOG_LEVEL":      "warn",
		"PVR_VULKAN_LIBRARY": "libvulkan.so.1; libvulkan.so;",
		"PVR_GLES_LIBRARY":   " ",
		"PVR_OPENCL_LIBRARY": "libPVROCL.so",
	}))
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, []string{"libvulkan.so.1", "libvulkan.so"}, c.Vulkan.Names)
	assert.Equal(t, []string{"libEGL.so"}, c.EGL.Names)
	assert.Empty(t, c.GLES.Names)
	assert.Equal(t, []string{"libPVROCL.so"}, c.OpenCL.Names)
}

func TestResolve(t *testing.T) {
	getenv := env(map[string]string{"VULKAN_SDK": "/sdk"})

	var c Config
	lib := c.resolve(dl.Vulkan, "linux", getenv)
	assert.Equal(t, []string{"libvulkan.so.1", "libvulkan.so"}, lib.Names)
	assert.Equal(t, filepath.Join("/sdk", "lib"), lib.SearchPaths[0])

	c.Vulkan = Library{Names: []string{"libvulkan_custom.so"}, SearchPaths: []string{"/custom"}}
	lib = c.resolve(dl.Vulkan, "linux", getenv)
	assert.Equal(t, []string{"libvulkan_custom.so"}, lib.Names)
	assert.Equal(t, []string{"/custom", filepath.Join("/sdk", "lib")}, lib.SearchPaths[:2])

	lib.Names[0] = "changed"
	assert.Equal(t, "libvulkan_custom.so", c.Vulkan.Names[0])
}

func TestFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvr.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"error\"\n[egl]\nnames = [\"libEGL_mesa.so\"]\n"), 0o644))

	c, err := fromEnv(env(map[string]string{
		EnvConfig:         path,
		"PVR_EGL_LIBRARY": "libEGL_override.so",
	}))
	require.NoError(t, err)
	assert.Equal(t, "error", c.LogLevel)
	assert.Equal(t, []string{"libEGL_override.so"}, c.EGL.Names)

	_, err = fromEnv(env(map[string]string{EnvConfig: filepath.Join(t.TempDir(), "missing.toml")}))
	assert.Error(t, err)
}

func TestLoadFileOverridesConfigVar(t *testing.T) {
	dir := t.TempDir()
	named := filepath.Join(dir, "named.toml")
	flag := filepath.Join(dir, "flag.toml")
	require.NoError(t, os.WriteFile(named, []byte("log_level = \"error\"\n"), 0o644))
	require.NoError(t, os.WriteFile(flag, []byte("log_level = \"debug\"\n[vulkan]\nnames = [\"libvulkan_flag.so\"]\n"), 0o644))
	t.Setenv(EnvConfig, named)
	t.Setenv(EnvLogLevel, "")
	t.Setenv("PVR_VULKAN_LIBRARY", "")

	c, err := LoadFile(flag)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, []string{"libvulkan_flag.so"}, c.Vulkan.Names)

	c, err = LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, "error", c.LogLevel)

	t.Setenv(EnvLogLevel, "warn")
	c, err = LoadFile(flag)
	require.NoError(t, err)
	assert.Equal(t, "warn", c.LogLevel)

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	c := Config{LogLevel: "debug", GLSC2: Library{Names: []string{"libGLSCv2.so"}}}
	data, err := c.Marshal()
	require.NoError(t, err)
	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestEnvVars(t *testing.T) {
	assert.Equal(t, []string{
		"PVR_CONFIG",
		"PVR_EGL_LIBRARY",
		"PVR_GLES_LIBRARY",
		"PVR_GLSC2_LIBRARY",
		"PVR_LOG_LEVEL",
		"PVR_OPENCL_LIBRARY",
		"PVR_VULKAN_LIBRARY",
		"VULKAN_SDK",
	}, EnvVars())
}

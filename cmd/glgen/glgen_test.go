// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const glRegistry = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
  <commands namespace="GL">
    <command>
      <proto>void <name>glClear</name></proto>
      <param group="ClearBufferMask"><ptype>GLbitfield</ptype> <name>mask</name></param>
    </command>
    <command>
      <proto><ptype>GLuint</ptype> <name>glCreateShader</name></proto>
      <param><ptype>GLenum</ptype> <name>type</name></param>
    </command>
    <command>
      <proto>const <ptype>GLubyte</ptype> *<name>glGetStringi</name></proto>
      <param><ptype>GLenum</ptype> <name>name</name></param>
      <param><ptype>GLuint</ptype> <name>index</name></param>
    </command>
    <command>
      <proto>void <name>glShaderSource</name></proto>
      <param><ptype>GLuint</ptype> <name>shader</name></param>
      <param><ptype>GLsizei</ptype> <name>count</name></param>
      <param>const <ptype>GLchar</ptype> *const*<name>string</name></param>
      <param>const <ptype>GLint</ptype> *<name>length</name></param>
    </command>
    <command>
      <proto>void *<name>glMapBufferOES</name></proto>
      <param><ptype>GLenum</ptype> <name>target</name></param>
      <param><ptype>GLenum</ptype> <name>access</name></param>
    </command>
    <command>
      <proto>void <name>glBegin</name></proto>
      <param><ptype>GLenum</ptype> <name>mode</name></param>
    </command>
  </commands>
  <feature api="gles2" name="GL_ES_VERSION_2_0" number="2.0">
    <require>
      <command name="glClear"/>
      <command name="glCreateShader"/>
      <command name="glShaderSource"/>
    </require>
  </feature>
  <feature api="gl" name="GL_VERSION_1_0" number="1.0">
    <require><command name="glBegin"/></require>
  </feature>
  <feature api="gles2" name="GL_ES_VERSION_3_0" number="3.0">
    <require>
      <command name="glClear"/>
      <command name="glGetStringi"/>
    </require>
  </feature>
  <extensions>
    <extension name="GL_OES_mapbuffer" supported="gles1|gles2">
      <require><command name="glMapBufferOES"/></require>
    </extension>
    <extension name="GL_ARB_thing" supported="gl">
      <require><command name="glBegin"/></require>
    </extension>
  </extensions>
</registry>
`

const vkRegistry = `<registry>
  <commands>
    <command>
      <proto><type>VkResult</type> <name>vkCreateInstance</name></proto>
      <param>const <type>VkInstanceCreateInfo</type>* <name>pCreateInfo</name></param>
      <param optional="true">const <type>VkAllocationCallbacks</type>* <name>pAllocator</name></param>
      <param><type>VkInstance</type>* <name>pInstance</name></param>
    </command>
    <command>
      <proto><type>PFN_vkVoidFunction</type> <name>vkGetInstanceProcAddr</name></proto>
      <param optional="true"><type>VkInstance</type> <name>instance</name></param>
      <param>const <type>char</type>* <name>pName</name></param>
    </command>
    <command>
      <proto><type>PFN_vkVoidFunction</type> <name>vkGetDeviceProcAddr</name></proto>
      <param><type>VkDevice</type> <name>device</name></param>
      <param>const <type>char</type>* <name>pName</name></param>
    </command>
    <command>
      <proto>void <name>vkGetPhysicalDeviceFeatures</name></proto>
      <param><type>VkPhysicalDevice</type> <name>physicalDevice</name></param>
      <param><type>VkPhysicalDeviceFeatures</type>* <name>pFeatures</name></param>
    </command>
    <command>
      <proto>void <name>vkCmdSetBlendConstants</name></proto>
      <param><type>VkCommandBuffer</type> <name>commandBuffer</name></param>
      <param>const <type>float</type> <name>blendConstants</name>[4]</param>
    </command>
    <command>
      <proto><type>VkResult</type> <name>vkSetDebugUtilsObjectNameEXT</name></proto>
      <param><type>VkDevice</type> <name>device</name></param>
      <param>const <type>VkDebugUtilsObjectNameInfoEXT</type>* <name>pNameInfo</name></param>
    </command>
    <command>
      <proto>void <name>vkCmdDraw</name></proto>
      <param><type>VkCommandBuffer</type> <name>commandBuffer</name></param>
      <param><type>uint32_t</type> <name>vertexCount</name></param>
      <param><type>VkShaderStageFlags</type> <name>stages</name></param>
    </command>
    <command name="vkCmdDrawAlias" alias="vkCmdDraw"/>
  </commands>
  <feature api="vulkan,vulkansc" name="VK_VERSION_1_0" number="1.0">
    <require>
      <command name="vkCreateInstance"/>
      <command name="vkGetInstanceProcAddr"/>
      <command name="vkGetDeviceProcAddr"/>
      <command name="vkGetPhysicalDeviceFeatures"/>
      <command name="vkCmdSetBlendConstants"/>
      <command name="vkCmdDraw"/>
    </require>
  </feature>
  <extensions>
    <extension name="VK_EXT_debug_utils" supported="vulkan" type="instance">
      <require><command name="vkSetDebugUtilsObjectNameEXT"/></require>
    </extension>
    <extension name="VK_FAKE_alias" supported="vulkan" type="device">
      <require><command name="vkCmdDrawAlias"/></require>
    </extension>
  </extensions>
</registry>
`

func parse(t *testing.T, src string) *registry {
	t.Helper()
	reg, err := parseRegistry(strings.NewReader(src))
	require.NoError(t, err)
	return reg
}

func symbols(cmds []*command) []string {
	var out []string
	for _, c := range cmds {
		out = append(out, c.Symbol())
	}
	return out
}

func TestSelectVersion(t *testing.T) {
	reg := parse(t, glRegistry)

	cmds, err := reg.selectCommands(&options{api: "gles2", version: "2.0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"glClear", "glCreateShader", "glShaderSource"}, symbols(cmds))

	cmds, err = reg.selectCommands(&options{api: "gles2", version: "3.0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"glClear", "glCreateShader", "glGetStringi", "glShaderSource"}, symbols(cmds))

	cmds, err = reg.selectCommands(&options{api: "gles2", version: "3.0", excludePrior: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"glGetStringi"}, symbols(cmds), "commands of earlier versions are left out")
}

func TestSelectExtensions(t *testing.T) {
	reg := parse(t, glRegistry)
	cmds, err := reg.selectCommands(&options{api: "gles2", extensions: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"glMapBufferOES"}, symbols(cmds))
}

func TestSelectFilter(t *testing.T) {
	reg := parse(t, glRegistry)
	filter, err := parseFilter(strings.NewReader("# kept\nglClear\n\nglShaderSource\n"))
	require.NoError(t, err)

	cmds, err := reg.selectCommands(&options{api: "gles2", version: "2.0", filter: filter})
	require.NoError(t, err)
	assert.Equal(t, []string{"glClear", "glShaderSource"}, symbols(cmds))

	filter["glBegin"] = true
	_, err = reg.selectCommands(&options{api: "gles2", version: "2.0", filter: filter})
	assert.ErrorContains(t, err, "not selected: glBegin")
}

func TestVulkanLevels(t *testing.T) {
	reg := parse(t, vkRegistry)
	for level, want := range map[string][]string{
		"global":   {"vkCreateInstance", "vkGetInstanceProcAddr"},
		"instance": {"vkGetDeviceProcAddr", "vkGetInstanceProcAddr", "vkGetPhysicalDeviceFeatures", "vkSetDebugUtilsObjectNameEXT"},
		"device":   {"vkCmdDraw", "vkCmdDrawAlias", "vkCmdSetBlendConstants"},
	} {
		cmds, err := reg.selectCommands(&options{api: "vulkan", level: level})
		require.NoError(t, err, level)
		assert.Equal(t, want, symbols(cmds), level)
	}
}

func TestGoType(t *testing.T) {
	gl := tableBase(glTypes)
	for c, want := range map[string]string{
		"void":                 "",
		"void *":               "unsafe.Pointer",
		"const GLchar *const*": "**byte",
		"GLuint":               "Uint",
		"const GLubyte *":      "*byte",
		"const GLint *":        "*Int",
		"const void *const*":   "*unsafe.Pointer",
		"GLfloat [4]":          "*Float",
		"const GLfloat [N][2]": "**Float",
		"GLDEBUGPROC":          "uintptr",
	} {
		got, err := goType(c, gl)
		require.NoError(t, err, c)
		assert.Equal(t, want, got, c)
	}
	_, err := goType("struct __GLsync *", gl)
	assert.Error(t, err)

	got, err := goType("const VkInstanceCreateInfo*", vkBase)
	require.NoError(t, err)
	assert.Equal(t, "unsafe.Pointer", got)
	got, err = goType("VkPipelineStageFlagBits2", vkBase)
	require.NoError(t, err)
	assert.Equal(t, "Flags", got)
	_, err = goType("VkPhysicalDeviceFeatures", vkBase)
	assert.Error(t, err, "structures cannot be passed by value")

	for c, want := range map[string]string{
		"void (CL_CALLBACK*)(const char* errinfo, const void* private_info, size_t cb, void* user_data)": "uintptr",
		"const unsigned char**":        "**byte",
		"cl_mem_flags":                 "Bitfield",
		"cl_device_type":               "Bitfield",
		"cl_platform_info":             "Uint",
		"const cl_context_properties*": "*ContextProperties",
		"cl_platform_id*":              "*PlatformID",
		"size_t":                       "uintptr",
		"const cl_image_format*":       "*ImageFormat",
	} {
		got, err := goType(c, clBase)
		require.NoError(t, err, c)
		assert.Equal(t, want, got, c)
	}
	_, err = goType("cl_icd_dispatch", clBase)
	assert.Error(t, err)
}

func TestParamName(t *testing.T) {
	assert.Equal(t, "typ", paramName("type"))
	assert.Equal(t, "str", paramName("string"))
	assert.Equal(t, "nativeDisplay", paramName("native_display"))
	assert.Equal(t, "pCreateInfo", paramName("pCreateInfo"))
}

func TestParseVersions(t *testing.T) {
	lo, hi, err := parseVersions("1.0-1.5", false)
	require.NoError(t, err)
	assert.Equal(t, version{1, 0}, lo)
	assert.Equal(t, version{1, 5}, hi)

	lo, hi, err = parseVersions("3.1", false)
	require.NoError(t, err)
	assert.Equal(t, version{}, lo)
	assert.Equal(t, version{3, 1}, hi)

	lo, _, err = parseVersions("3.1", true)
	require.NoError(t, err)
	assert.Equal(t, version{3, 1}, lo)

	_, _, err = parseVersions("1.5-1.0", false)
	assert.Error(t, err)
	_, _, err = parseVersions("two", false)
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	reg := parse(t, glRegistry)
	o := &options{api: "gles2", version: "2.0", pkg: "gles", typ: "Functions20", id: "ES20ID", prefix: "gl", out: "functions20.go"}
	cmds, err := reg.selectCommands(o)
	require.NoError(t, err)
	src, err := generate(o, cmds)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "// Code generated by glgen --api gles2 --version 2.0 --type Functions20 --id ES20ID --prefix gl; DO NOT EDIT.")
	assert.Contains(t, out, "package gles\n")
	assert.Contains(t, out, "\tES20Clear ES20ID = iota\n")
	assert.Contains(t, out, "\tES20ShaderSource\n")
	assert.Contains(t, out, "var functions20Names = []string{\n\t\"glClear\",")
	assert.Contains(t, out, "// Functions20 holds the OpenGL ES 2.0 entry points.")
	assert.Contains(t, out, "CreateShader func(typ Enum) Uint")
	assert.Contains(t, out, "ShaderSource func(shader Uint, count Sizei, str **byte, length *Int)")
	assert.Contains(t, out, "&f.ShaderSource,")
	assert.NotContains(t, out, `"unsafe"`, "unused imports are removed")
}

func TestGenerateVulkan(t *testing.T) {
	reg := parse(t, vkRegistry)
	o := &options{api: "vulkan", level: "device", pkg: "vk", typ: "DeviceBindings", prefix: "vk", filterPath: "/src/vk/device_commands.txt"}
	cmds, err := reg.selectCommands(o)
	require.NoError(t, err)
	src, err := generate(o, cmds)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "glgen --api vulkan --level device --filter device_commands.txt --type DeviceBindings --prefix vk;")
	assert.NotContains(t, out, "type DeviceBindingsID")
	assert.Contains(t, out, "CmdSetBlendConstants func(commandBuffer CommandBuffer, blendConstants *float32)")
	assert.Contains(t, out, "CmdDraw              func(commandBuffer CommandBuffer, vertexCount uint32, stages Flags)")
	assert.Contains(t, out, "func (d *DeviceBindings) fields() []any {")
}

func TestCommandRun(t *testing.T) {
	dir := t.TempDir()
	regPath := filepath.Join(dir, "gl.xml")
	require.NoError(t, os.WriteFile(regPath, []byte(glRegistry), 0o644))
	out := filepath.Join(dir, "ext.go")

	cmd := newCommand()
	cmd.SetArgs([]string{
		"--registry", regPath, "--api", "gles2", "--extensions",
		"--package", "gles", "--type", "ExtFunctions", "--id", "ExtID", "--prefix", "gl", "--out", out,
	})
	require.NoError(t, cmd.Execute())
	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "MapBufferOES func(target Enum, access Enum) unsafe.Pointer")
	assert.Contains(t, string(src), "import \"unsafe\"")

	cmd = newCommand()
	cmd.SetArgs([]string{"--registry", regPath, "--api", "gles2", "--package", "gles", "--type", "T", "--level", "device"})
	assert.ErrorContains(t, cmd.Execute(), "--level only applies to vulkan")
}

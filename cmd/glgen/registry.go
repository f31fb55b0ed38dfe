// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// registry is the subset of a Khronos XML API registry (egl.xml, gl.xml,
// vk.xml) that describes commands.
type registry struct {
	Commands   []command   `xml:"commands>command"`
	Features   []feature   `xml:"feature"`
	Extensions []extension `xml:"extensions>extension"`
}

type command struct {
	// Name and Alias are set on alias entries, which carry no prototype.
	Name   string `xml:"name,attr"`
	Alias  string `xml:"alias,attr"`
	API    string `xml:"api,attr"`
	Proto  decl   `xml:"proto"`
	Params []decl `xml:"param"`

	// extType is the type attribute of the extension that requires the
	// command, "instance" or "device" in vk.xml.
	extType string
}

// Symbol returns the command's native name.
func (c *command) Symbol() string {
	if c.Proto.Name != "" {
		return c.Proto.Name
	}
	return c.Name
}

// decl is a <proto> or <param>: a C declaration whose name and type are
// marked up.
type decl struct {
	API  string
	Name string
	Type string
	// C is the declaration without its name, such as "const GLchar *".
	C string
}

func (d *decl) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		if a.Name.Local == "api" {
			d.API = a.Value
		}
	}
	var text strings.Builder
	elem := ""
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			elem = t.Name.Local
		case xml.EndElement:
			if t.Name == start.Name {
				d.C = strings.Join(strings.Fields(text.String()), " ")
				return nil
			}
			elem = ""
		case xml.CharData:
			switch elem {
			case "name":
				d.Name = string(t)
				continue
			case "ptype", "type":
				d.Type = string(t)
			case "comment":
				continue
			}
			text.Write(t)
		}
	}
}

type feature struct {
	API     string  `xml:"api,attr"`
	Name    string  `xml:"name,attr"`
	Number  string  `xml:"number,attr"`
	Require []block `xml:"require"`
	Remove  []block `xml:"remove"`
}

type extension struct {
	Name      string  `xml:"name,attr"`
	Supported string  `xml:"supported,attr"`
	Type      string  `xml:"type,attr"`
	Require   []block `xml:"require"`
}

type block struct {
	API      string `xml:"api,attr"`
	Profile  string `xml:"profile,attr"`
	Commands []struct {
		Name string `xml:"name,attr"`
	} `xml:"command"`
}

func parseRegistry(r io.Reader) (*registry, error) {
	reg := new(registry)
	if err := xml.NewDecoder(r).Decode(reg); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	return reg, nil
}

// apiMatch reports whether api appears in a list such as "gles1|gles2" or
// "vulkan,vulkansc". An empty list matches every API.
func apiMatch(list, api string) bool {
	if list == "" {
		return true
	}
	return slices.Contains(strings.FieldsFunc(list, func(r rune) bool {
		return r == '|' || r == ','
	}), api)
}

// commands returns the commands defined for api by name, with aliases
// resolved to copies of their targets.
func (reg *registry) commands(api string) map[string]*command {
	m := make(map[string]*command)
	var aliases []command
	for i := range reg.Commands {
		c := &reg.Commands[i]
		if !apiMatch(c.API, api) {
			continue
		}
		if c.Alias != "" {
			aliases = append(aliases, *c)
			continue
		}
		cp := *c
		cp.Params = nil
		for _, p := range c.Params {
			if apiMatch(p.API, api) {
				cp.Params = append(cp.Params, p)
			}
		}
		m[c.Proto.Name] = &cp
	}
	for _, a := range aliases {
		target, ok := m[a.Alias]
		if !ok {
			continue
		}
		cp := *target
		cp.Proto.Name = a.Name
		m[a.Name] = &cp
	}
	return m
}

type version struct {
	major, minor int
}

func (v version) less(o version) bool {
	if v.major != o.major {
		return v.major < o.major
	}
	return v.minor < o.minor
}

func (v version) String() string {
	return fmt.Sprintf("%d.%d", v.major, v.minor)
}

func parseVersion(s string) (version, error) {
	maj, mnr, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return version{}, fmt.Errorf("invalid version %q", s)
	}
	a, err1 := strconv.Atoi(maj)
	b, err2 := strconv.Atoi(mnr)
	if err1 != nil || err2 != nil || a < 0 || b < 0 {
		return version{}, fmt.Errorf("invalid version %q", s)
	}
	return version{a, b}, nil
}

// parseVersions parses "1.0-1.5" or "3.0". A single version selects every
// feature up to it, or only itself with excludePrior.
func parseVersions(s string, excludePrior bool) (lo, hi version, err error) {
	if a, b, ok := strings.Cut(s, "-"); ok {
		if lo, err = parseVersion(a); err != nil {
			return lo, hi, err
		}
		if hi, err = parseVersion(b); err != nil {
			return lo, hi, err
		}
		if hi.less(lo) {
			return lo, hi, fmt.Errorf("invalid version range %q", s)
		}
		return lo, hi, nil
	}
	if hi, err = parseVersion(s); err != nil {
		return lo, hi, err
	}
	if excludePrior {
		lo = hi
	}
	return lo, hi, nil
}

var levels = []string{"global", "instance", "device"}

// inLevel reports whether a Vulkan command is resolved at level: before an
// instance exists, through vkGetInstanceProcAddr for an instance, or
// through vkGetDeviceProcAddr.
func inLevel(c *command, level string) bool {
	name := c.Symbol()
	global := name == "vkGetInstanceProcAddr" || name == "vkCreateInstance" ||
		strings.HasPrefix(name, "vkEnumerateInstance")
	switch level {
	case "global":
		return global
	case "instance":
		if name == "vkGetInstanceProcAddr" || name == "vkGetDeviceProcAddr" {
			return true
		}
		if global {
			return false
		}
		if c.extType == "instance" {
			return true
		}
		if len(c.Params) == 0 {
			return false
		}
		first := c.Params[0].Type
		return first == "VkInstance" || first == "VkPhysicalDevice"
	case "device":
		return !global && !inLevel(c, "instance")
	}
	return false
}

var arrayRE = regexp.MustCompile(`\[[^\]]*\]`)

// selectCommands returns the commands chosen by o, sorted by symbol.
func (reg *registry) selectCommands(o *options) ([]*command, error) {
	all := reg.commands(o.api)
	want := make(map[string]bool)
	extType := make(map[string]string)
	require := func(blocks []block, set bool) {
		for _, b := range blocks {
			if !apiMatch(b.API, o.api) {
				continue
			}
			for _, c := range b.Commands {
				want[c.Name] = set
			}
		}
	}
	everything := o.version == "" && !o.extensions
	if o.version != "" || everything {
		lo, hi := version{}, version{1 << 30, 0}
		if o.version != "" {
			var err error
			if lo, hi, err = parseVersions(o.version, o.excludePrior); err != nil {
				return nil, err
			}
		}
		prior := make(map[string]bool)
		for _, f := range reg.Features {
			if !apiMatch(f.API, o.api) {
				continue
			}
			v, err := parseVersion(f.Number)
			if err != nil {
				return nil, fmt.Errorf("feature %s: %w", f.Name, err)
			}
			switch {
			case v.less(lo):
				for _, b := range f.Require {
					for _, c := range b.Commands {
						prior[c.Name] = true
					}
				}
			case !hi.less(v):
				require(f.Require, true)
				require(f.Remove, false)
			}
		}
		for name := range prior {
			delete(want, name)
		}
	}
	if o.extensions || everything {
		for _, e := range reg.Extensions {
			if !apiMatch(e.Supported, o.api) {
				continue
			}
			for _, b := range e.Require {
				if !apiMatch(b.API, o.api) {
					continue
				}
				for _, c := range b.Commands {
					want[c.Name] = true
					if e.Type != "" {
						extType[c.Name] = e.Type
					}
				}
			}
		}
	}

	var out []*command
	for name, ok := range want {
		if !ok {
			continue
		}
		c, found := all[name]
		if !found {
			return nil, fmt.Errorf("%s is required but not defined for %s", name, o.api)
		}
		c.extType = extType[name]
		if o.level != "" && !inLevel(c, o.level) {
			continue
		}
		out = append(out, c)
	}
	if o.filter != nil {
		out = slices.DeleteFunc(out, func(c *command) bool {
			return !o.filter[c.Symbol()]
		})
		if len(out) != len(o.filter) {
			var missing []string
			for name := range o.filter {
				if !slices.ContainsFunc(out, func(c *command) bool { return c.Symbol() == name }) {
					missing = append(missing, name)
				}
			}
			slices.Sort(missing)
			return nil, fmt.Errorf("filter lists commands that are not selected: %s", strings.Join(missing, ", "))
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no commands selected")
	}
	slices.SortFunc(out, func(a, b *command) int {
		return strings.Compare(a.Symbol(), b.Symbol())
	})
	return out, nil
}

// parseFilter reads one command name per line. Blank lines and lines
// starting with # are ignored.
func parseFilter(r io.Reader) (map[string]bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names[line] = true
	}
	return names, nil
}

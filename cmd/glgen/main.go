// SPDX-License-Identifier: Unlicense OR MIT

// Command glgen generates the function tables of the egl, gles, glsc2 and
// vk packages from a Khronos XML API registry.
//
// It selects commands by API version, extension or Vulkan dispatch level,
// optionally narrowed to the names listed in a filter file, and writes a
// struct with one function field per command, the matching symbol names
// and, with --id, an identifier type enumerating them.
package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

type options struct {
	registry     string
	api          string
	version      string
	excludePrior bool
	extensions   bool
	level        string
	filterPath   string
	pkg          string
	typ          string
	id           string
	prefix       string
	out          string

	filter map[string]bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "glgen: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	o := new(options)
	cmd := &cobra.Command{
		Use:           "glgen",
		Short:         "Generate function tables from a Khronos API registry",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.pkg == "" {
				o.pkg = os.Getenv("GOPACKAGE")
			}
			if err := o.validate(); err != nil {
				return err
			}
			src, err := o.run()
			if err != nil {
				return err
			}
			if o.out == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			return os.WriteFile(o.out, src, 0o644)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&o.registry, "registry", "", "registry XML file")
	fl.StringVar(&o.api, "api", "", "API name in the registry: egl, gles2, glsc2 or vulkan")
	fl.StringVar(&o.version, "version", "", "feature version, or range such as 1.0-1.5")
	fl.BoolVar(&o.excludePrior, "exclude-prior", false, "leave out commands of versions before --version")
	fl.BoolVar(&o.extensions, "extensions", false, "select extension commands")
	fl.StringVar(&o.level, "level", "", "Vulkan dispatch level: "+strings.Join(levels, ", "))
	fl.StringVar(&o.filterPath, "filter", "", "file listing the commands to keep, one per line")
	fl.StringVar(&o.pkg, "package", "", "package name (default $GOPACKAGE)")
	fl.StringVar(&o.typ, "type", "", "name of the generated struct")
	fl.StringVar(&o.id, "id", "", "name of the generated identifier type")
	fl.StringVar(&o.prefix, "prefix", "", "symbol prefix removed from field names")
	fl.StringVar(&o.out, "out", "", "output file (default standard output)")
	return cmd
}

func (o *options) validate() error {
	switch {
	case o.registry == "":
		return errors.New("--registry is required")
	case o.api == "":
		return errors.New("--api is required")
	case o.typ == "":
		return errors.New("--type is required")
	case o.pkg == "":
		return errors.New("--package is required outside go generate")
	case o.excludePrior && o.version == "":
		return errors.New("--exclude-prior needs --version")
	case o.level != "" && o.api != "vulkan":
		return errors.New("--level only applies to vulkan")
	case o.level != "" && !slices.Contains(levels, o.level):
		return fmt.Errorf("unknown level %q", o.level)
	}
	return nil
}

func (o *options) run() ([]byte, error) {
	if o.filterPath != "" {
		f, err := os.Open(o.filterPath)
		if err != nil {
			return nil, err
		}
		o.filter, err = parseFilter(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.filterPath, err)
		}
	}
	f, err := os.Open(o.registry)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	reg, err := parseRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.registry, err)
	}
	cmds, err := reg.selectCommands(o)
	if err != nil {
		return nil, err
	}
	return generate(o, cmds)
}

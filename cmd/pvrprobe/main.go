// SPDX-License-Identifier: Unlicense OR MIT

// Command pvrprobe loads the EGL, OpenGL ES, OpenGL SC and Vulkan libraries
// the way the bindings would and reports which entry points resolved.
package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pvrsdk/native/bind"
	"github.com/pvrsdk/native/config"
	"github.com/pvrsdk/native/internal/dl"
	"github.com/pvrsdk/native/internal/log"
)

type flags struct {
	config     string
	apis       []string
	missing    bool
	extensions bool
	env        bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pvrprobe: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "pvrprobe",
		Short:         "Report which native graphics entry points resolve",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.env {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(config.EnvVars(), "\n"))
				return nil
			}
			apis, err := parseAPIs(f.apis)
			if err != nil {
				return err
			}
			cfg, err := config.LoadFile(f.config)
			if err != nil {
				return err
			}
			logger := log.New(cfg.LogLevel)
			defer logger.Sync()
			p := &prober{
				open: func(api dl.API) (bind.Library, error) {
					lib, err := cfg.Open(api)
					if err != nil {
						return nil, err
					}
					return lib, nil
				},
				reg: bind.RegisterFunc,
				log: logger,
			}
			var reports []apiReport
			for _, api := range apis {
				reports = append(reports, p.probe(api))
			}
			fmt.Fprint(cmd.OutOrStdout(), render(reports, renderOptions{
				missing:    f.missing,
				extensions: f.extensions,
			}))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "TOML configuration file (default $"+config.EnvConfig+")")
	fl.StringSliceVar(&f.apis, "api", nil, "APIs to probe: egl, gles, glsc2, vulkan, opencl (default all)")
	fl.BoolVar(&f.missing, "missing", false, "list entry points that did not resolve")
	fl.BoolVar(&f.extensions, "extensions", false, "list the extensions each API reports")
	fl.BoolVar(&f.env, "env", false, "print the environment variables that configure loading and exit")
	return cmd
}

func parseAPIs(names []string) ([]dl.API, error) {
	if len(names) == 0 {
		return slices.Clone(dl.APIs), nil
	}
	var apis []dl.API
	for _, name := range names {
		i := slices.IndexFunc(dl.APIs, func(a dl.API) bool {
			return a.String() == strings.ToLower(strings.TrimSpace(name))
		})
		if i < 0 {
			return nil, fmt.Errorf("unknown API %q", name)
		}
		if !slices.Contains(apis, dl.APIs[i]) {
			apis = append(apis, dl.APIs[i])
		}
	}
	return apis, nil
}

// SPDX-License-Identifier: Unlicense OR MIT

// Command helloapi draws the HelloAPI triangle into an offscreen EGL
// pbuffer. It feeds the tutorial the same lifecycle commands a native
// activity would: InitWindow, then TermWindow once the duration elapsed or
// on interrupt.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pvrsdk/native/config"
	"github.com/pvrsdk/native/egl"
	"github.com/pvrsdk/native/gles"
	"github.com/pvrsdk/native/helloapi"
	"github.com/pvrsdk/native/internal/log"
)

type flags struct {
	config   string
	width    int
	height   int
	duration time.Duration
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "helloapi: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "helloapi",
		Short:         "Draw a triangle with EGL and OpenGL ES 2.0",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "TOML configuration file (default $"+config.EnvConfig+")")
	fl.IntVar(&f.width, "width", 640, "pbuffer width")
	fl.IntVar(&f.height, "height", 480, "pbuffer height")
	fl.DurationVar(&f.duration, "duration", 2*time.Second, "how long to animate")
	return cmd
}

func run(ctx context.Context, f flags) error {
	cfg, err := config.LoadFile(f.config)
	if err != nil {
		return err
	}
	logger := log.New(cfg.LogLevel)
	defer logger.Sync()
	log.SetLogger(logger)

	el := egl.NewLoader(egl.WithConfig(cfg), egl.WithLogger(logger))
	defer el.Close()
	gl := gles.NewLoader(gles.WithConfig(cfg), gles.WithEGL(el), gles.WithLogger(logger))
	defer gl.Close()

	app, err := helloapi.New(el, gl, helloapi.WithSize(f.width, f.height), helloapi.WithLogger(logger))
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	cmds := make(chan helloapi.Command)
	go func() {
		defer close(cmds)
		send := func(c helloapi.Command) bool {
			select {
			case cmds <- c:
				return true
			case <-ctx.Done():
				return false
			}
		}
		if !send(helloapi.InitWindow) {
			return
		}
		select {
		case <-time.After(f.duration):
		case <-ctx.Done():
		}
		send(helloapi.TermWindow)
	}()

	start := time.Now()
	err = app.Run(ctx, cmds)
	if err != nil && ctx.Err() == nil {
		return err
	}
	elapsed := time.Since(start)
	logger.Info("done",
		zap.Int("frames", app.Frames()),
		zap.Duration("elapsed", elapsed),
		zap.Float64("fps", float64(app.Frames())/elapsed.Seconds()))
	return nil
}

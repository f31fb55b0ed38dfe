// SPDX-License-Identifier: Unlicense OR MIT

package helloapi_test

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/pvrsdk/native/helloapi"
)

func TestRunStaysOnOneThread(t *testing.T) {
	d := newDrivers()
	a := d.app(t)
	d.egl.TrackThreads(unix.Gettid)

	// Keep the scheduler busy so an unlocked goroutine would migrate.
	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 2*runtime.GOMAXPROCS(0); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					runtime.Gosched()
				}
			}
		}()
	}
	defer func() {
		close(stop)
		wg.Wait()
	}()

	cmds := make(chan helloapi.Command)
	go func() {
		for i := 0; i < 3; i++ {
			cmds <- helloapi.InitWindow
			for n := d.egl.Swaps(); d.egl.Swaps() < n+5; {
				time.Sleep(time.Millisecond)
			}
			cmds <- helloapi.TermWindow
			time.Sleep(5 * time.Millisecond)
		}
		close(cmds)
	}()
	require.NoError(t, a.Run(context.Background(), cmds))
	assert.Equal(t, 1, d.egl.Threads())
}

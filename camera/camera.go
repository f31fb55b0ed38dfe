// SPDX-License-Identifier: Unlicense OR MIT

// Package camera declares the camera capability consumed by samples that
// texture geometry with a live camera feed. Platform implementations
// stream frames into GL textures; no such implementation is part of this
// module, and New returns one reporting ErrUnsupported.
package camera

import "errors"

// ErrUnsupported is returned by sessions on platforms without a camera
// implementation.
var ErrUnsupported = errors.New("camera: not supported on this platform")

// Position selects a camera.
type Position uint8

const (
	Back Position = iota
	Front
)

func (p Position) String() string {
	switch p {
	case Back:
		return "back"
	case Front:
		return "front"
	default:
		return "unknown"
	}
}

// Plane selects one of the textures a frame is delivered in.
type Plane uint8

const (
	// RGB is the single plane of an RGB frame.
	RGB Plane = iota
	// Luma is the Y plane of a luma/chroma frame.
	Luma
	// Chroma is the interleaved CbCr plane of a luma/chroma frame.
	Chroma
)

// Interface is a camera session. Frames are polled: UpdateImage latches the
// newest frame into the textures returned by Texture.
type Interface interface {
	// InitializeSession opens the preferred camera, falling back to
	// another one, at a resolution close to width by height.
	InitializeSession(preferred Position, width, height int) error
	DestroySession()
	// UpdateImage reports whether a new frame was latched.
	UpdateImage() bool
	HasProjectionMatrixChanged() bool
	// ProjectionMatrix maps texture coordinates of the latched frame, in
	// column major order.
	ProjectionMatrix() [16]float32
	// Texture returns the GL texture name of plane, or 0.
	Texture(plane Plane) uint32
	HasRGBTexture() bool
	HasLumaChromaTextures() bool
	// Size returns the frame size.
	Size() (width, height int)
}

// New returns the camera implementation of the running platform.
func New() Interface {
	return new(unsupported)
}

type unsupported struct{}

func (unsupported) InitializeSession(Position, int, int) error { return ErrUnsupported }
func (unsupported) DestroySession()                            {}
func (unsupported) UpdateImage() bool                          { return false }
func (unsupported) HasProjectionMatrixChanged() bool           { return false }
func (unsupported) Texture(Plane) uint32                       { return 0 }
func (unsupported) HasRGBTexture() bool                        { return false }
func (unsupported) HasLumaChromaTextures() bool                { return false }
func (unsupported) Size() (int, int)                           { return 0, 0 }

func (unsupported) ProjectionMatrix() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

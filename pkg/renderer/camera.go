package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// CameraConfig contains the user-settable camera parameters
type CameraConfig struct {
	AspectRatio     float64   // Image width over height
	Width           int       // Rendered image width in pixels
	SamplesPerPixel int       // Random samples per pixel
	MaxDepth        int       // Maximum number of ray bounces
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Point the camera is looking from
	LookAt          core.Vec3 // Point the camera is looking at
	VUp             core.Vec3 // Camera-relative "up" direction
	DefocusAngle    float64   // Variation angle in degrees of rays through each pixel
	FocusDistance   float64   // Distance from camera to the plane of perfect focus
}

// DefaultCameraConfig returns the stock camera: a 100px square image looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		Width:           100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// Validate reports every setting that would make the camera ill-defined
func (c CameraConfig) Validate() error {
	var errs []error
	if c.Width < 1 {
		errs = append(errs, fmt.Errorf("width must be at least 1, got %d", c.Width))
	}
	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		errs = append(errs, fmt.Errorf("aspect ratio must be positive and finite, got %v", c.AspectRatio))
	}
	if c.SamplesPerPixel < 1 {
		errs = append(errs, fmt.Errorf("samples per pixel must be at least 1, got %d", c.SamplesPerPixel))
	}
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth))
	}
	if !(c.VFov > 0 && c.VFov < 180) {
		errs = append(errs, fmt.Errorf("vertical field of view must be in (0, 180) degrees, got %v", c.VFov))
	}
	if !(c.FocusDistance > 0) {
		errs = append(errs, fmt.Errorf("focus distance must be positive, got %v", c.FocusDistance))
	}
	if c.DefocusAngle < 0 {
		errs = append(errs, fmt.Errorf("defocus angle must not be negative, got %v", c.DefocusAngle))
	}
	if c.LookFrom == c.LookAt {
		errs = append(errs, errors.New("look-from and look-at must differ"))
	} else if c.VUp.Cross(c.LookFrom.Subtract(c.LookAt)).NearZero() {
		errs = append(errs, errors.New("up vector must not be parallel to the view direction"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid camera config: %w", errors.Join(errs...))
	}
	return nil
}

// Camera generates primary rays. All fields are derived once by NewCamera
// and never change afterwards, so a Camera is safe to share between workers.
type Camera struct {
	config            CameraConfig
	imageHeight       int
	pixelSamplesScale float64   // Color scale factor for a sum of pixel samples
	center            core.Vec3 // Camera center
	pixel00           core.Vec3 // Location of pixel (0, 0)
	pixelDeltaU       core.Vec3 // Offset to the pixel to the right
	pixelDeltaV       core.Vec3 // Offset to the pixel below
	u, v, w           core.Vec3 // Camera frame basis vectors
	defocusDiskU      core.Vec3 // Defocus disk horizontal radius
	defocusDiskV      core.Vec3 // Defocus disk vertical radius
}

// NewCamera derives the viewport geometry from config.
// The config is not validated here; see CameraConfig.Validate.
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config}

	c.imageHeight = max(1, int(float64(config.Width)/config.AspectRatio))
	c.pixelSamplesScale = 1.0 / float64(config.SamplesPerPixel)
	c.center = config.LookFrom

	// Viewport dimensions; the width follows the realized raster, not the requested aspect
	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(config.Width) / float64(c.imageHeight))

	c.w = config.LookFrom.Subtract(config.LookAt).Unit()
	c.u = config.VUp.Cross(c.w).Unit()
	c.v = c.w.Cross(c.u)

	// Image rows grow downward while v points up
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(config.Width))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c
}

// GetRay returns a ray from the defocus disk through a random point inside
// pixel (i, j). The direction is not normalized.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// defocusDiskSample returns a random point on the camera's lens
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SampleInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// ImageWidth returns the raster width in pixels
func (c *Camera) ImageWidth() int { return c.config.Width }

// ImageHeight returns the raster height in pixels, always at least 1
func (c *Camera) ImageHeight() int { return c.imageHeight }

// PixelSamplesScale returns 1/SamplesPerPixel
func (c *Camera) PixelSamplesScale() float64 { return c.pixelSamplesScale }

// Center returns the camera position
func (c *Camera) Center() core.Vec3 { return c.center }

// Basis returns the camera frame: u points right, v up, w backwards
func (c *Camera) Basis() (u, v, w core.Vec3) { return c.u, c.v, c.w }

// Pixel00 returns the world-space center of the upper-left pixel
func (c *Camera) Pixel00() core.Vec3 { return c.pixel00 }

// PixelDeltas returns the world-space step to the next pixel right and down
func (c *Camera) PixelDeltas() (du, dv core.Vec3) { return c.pixelDeltaU, c.pixelDeltaV }

// DefocusDisk returns the lens radius vectors along u and v
func (c *Camera) DefocusDisk() (du, dv core.Vec3) { return c.defocusDiskU, c.defocusDiskV }

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

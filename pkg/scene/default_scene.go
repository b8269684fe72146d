package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewDefaultScene creates the three-sphere scene with a large ground sphere
func NewDefaultScene() *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			Width:           400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            20,
			LookFrom:        core.NewVec3(-2, 2, 1),
			LookAt:          core.NewVec3(0, 0, -1),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0,
			FocusDistance:   3.4,
		},
	}

	// Create materials
	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.50)
	materialBubble := material.NewDielectric(1.00 / 1.50) // Air inside glass
	materialRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, materialGround),
		geometry.NewSphere(core.NewVec3(0.0, 0.0, -1.2), 0.5, materialCenter),
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.5, materialLeft),
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.4, materialBubble),
		geometry.NewSphere(core.NewVec3(1.0, 0.0, -1.0), 0.5, materialRight),
	)

	return s
}

// NewDefocusScene is the default scene seen through a wide lens focused at the center sphere
func NewDefocusScene() *Scene {
	s := NewDefaultScene()
	s.CameraConfig.DefocusAngle = 10.0
	s.CameraConfig.FocusDistance = 3.4
	return s
}

// NewEmptyScene has no geometry, so every ray sees the sky
func NewEmptyScene() *Scene {
	return &Scene{CameraConfig: renderer.DefaultCameraConfig()}
}

package scene

import (
	"fmt"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewShapesScene shows every primitive (box, triangle mesh, quad, sphere)
// on a ground quad, grouped in a BVH
func NewShapesScene() (*Scene, error) {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			Width:           400,
			SamplesPerPixel: 50,
			MaxDepth:        20,
			VFov:            40,
			LookFrom:        core.NewVec3(0, 1.5, 6),
			LookAt:          core.NewVec3(0, 0.5, 0),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0.5,
			FocusDistance:   6,
		},
		UseBVH: true,
	}

	ground := material.NewTexturedLambertian(material.NewChecker(0.5, core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(0.2, 0.3, 0.1)))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1)
	glass := material.NewDielectric(1.5)

	// Square pyramid; each side is wound so its normal faces outward
	pyramid, err := geometry.NewTriangleMesh(
		[]core.Vec3{
			core.NewVec3(1.0, 0, 0.5),
			core.NewVec3(2.0, 0, 0.5),
			core.NewVec3(2.0, 0, -0.5),
			core.NewVec3(1.0, 0, -0.5),
			core.NewVec3(1.5, 1.2, 0), // apex
		},
		[]int{
			0, 1, 4,
			1, 2, 4,
			2, 3, 4,
			3, 0, 4,
		},
		gold,
	)
	if err != nil {
		return nil, fmt.Errorf("build pyramid: %w", err)
	}

	s.Add(
		NewGroundQuad(core.NewVec3(0, 0, 0), 20, ground),
		geometry.NewBox(core.NewVec3(-2.0, 0, -0.5), core.NewVec3(-1.0, 1, 0.5), red),
		geometry.NewSphere(core.NewVec3(0, 0.5, 0), 0.5, glass),
		pyramid,
	)

	return s, nil
}

// NewGroundQuad creates a horizontal square centered at center with its normal pointing up (0,1,0)
func NewGroundQuad(center core.Vec3, size float64, material core.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, material)
}

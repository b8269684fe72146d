package output

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// intensity keeps byte values strictly below 256
var intensity = core.NewInterval(0.000, 0.999)

// linearToGamma applies gamma 2; negative components map to black
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// toByte converts one linear color component to an 8-bit display value
func toByte(linear float64) uint8 {
	return uint8(int(256 * intensity.Clamp(linearToGamma(linear))))
}

// ToRGB converts a linear color to gamma-corrected 8-bit RGB
func ToRGB(c core.Vec3) (r, g, b uint8) {
	return toByte(c.X), toByte(c.Y), toByte(c.Z)
}

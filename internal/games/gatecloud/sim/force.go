package sim

import (
	"math"

	"github.com/vovakirdan/gatecloud/internal/core"
)

// RadialFalloff returns the force magnitude at distance d from a source of
// the given radius: linear from full strength at the centre to zero at the edge.
func RadialFalloff(d, radius, strength, power float64) float64 {
	if radius <= 0 || d >= radius {
		return 0
	}
	return (radius - d) / radius * strength * power
}

// DirectionalForce decomposes a magnitude along an angle in degrees,
// where 0 points up and positive angles lean right.
func DirectionalForce(deg, magnitude float64) core.Vec {
	rad := core.Radians(deg)
	return core.V(math.Sin(rad)*magnitude, -math.Cos(rad)*magnitude)
}

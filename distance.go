package georef

import (
	"math"

	"github.com/terrabotics/georef/angle"
)

// earthMeanRadius is the sphere radius used by Distance, in meters.
const earthMeanRadius = 6371000.0

// Distance returns the great-circle surface distance in meters between two
// geodetic points, using the haversine formula on a spherical Earth of
// mean radius. It is independent of any reference frame state.
func Distance(latA, lonA, latB, lonB angle.Angle) float64 {
	dLat := (latB - latA).Radian()
	dLon := (lonB - lonA).Radian()

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		sinLon*sinLon*math.Cos(latA.Radian())*math.Cos(latB.Radian())
	return earthMeanRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

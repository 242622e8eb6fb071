package georef

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ellipsoid holds the defining geometry of a reference ellipsoid. Lengths
// are in meters.
type Ellipsoid struct {
	SemiMajorAxis float64
	SemiMinorAxis float64
	Flattening    float64
}

// WGS84 is the World Geodetic System 1984 reference ellipsoid.
var WGS84 = Ellipsoid{
	SemiMajorAxis: 6378137.0,
	SemiMinorAxis: 6378137.0 * (1.0 - 1.0/298.257223563),
	Flattening:    1.0 / 298.257223563,
}

// ellipsoidFor maps a surface tag to its ellipsoid geometry. The surface
// tag is an open value, so anything unrecognized falls back to WGS84,
// which is also the only preset so far.
func ellipsoidFor(st SurfaceType) Ellipsoid {
	return WGS84
}

// EccentricitySquared returns the square of the first eccentricity.
func (e Ellipsoid) EccentricitySquared() float64 {
	return e.Flattening * (2.0 - e.Flattening)
}

// GeodeticToECEF converts geodetic coordinates (latitude and longitude in
// radians, elevation in meters above the ellipsoid) to an ECEF position in
// meters.
func (e Ellipsoid) GeodeticToECEF(lat, lon, elevation float64) r3.Vec {
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)

	// Radius of curvature in the prime vertical at the input latitude.
	e2 := e.EccentricitySquared()
	n := e.SemiMajorAxis / math.Sqrt(1.0-e2*sinLat*sinLat)

	ratio := (e.SemiMinorAxis * e.SemiMinorAxis) /
		(e.SemiMajorAxis * e.SemiMajorAxis)
	return r3.Vec{
		X: (n + elevation) * cosLat * cosLon,
		Y: (n + elevation) * cosLat * sinLon,
		Z: (ratio*n + elevation) * sinLat,
	}
}

// ecefToGeodeticIterations bounds the Bowring refinement. Near-surface
// inputs converge in two or three iterations; five covers every
// representable input, so the inversion always completes.
const ecefToGeodeticIterations = 5

// ECEFToGeodetic converts an ECEF position in meters to geodetic latitude
// and longitude in radians and elevation in meters, using the iterative
// Bowring method. Degenerate inputs on the polar axis use an axial
// altitude estimate instead of the prime-vertical projection; the result is
// always a best-effort value, never an error.
func (e Ellipsoid) ECEFToGeodetic(pos r3.Vec) (lat, lon, elevation float64) {
	e2 := e.EccentricitySquared()
	lon = math.Atan2(pos.Y, pos.X)

	p := math.Hypot(pos.X, pos.Y)
	lat = math.Atan2(pos.Z, p*(1.0-e2))

	for i := 0; i < ecefToGeodeticIterations; i++ {
		sinLat := math.Sin(lat)
		n := e.SemiMajorAxis / math.Sqrt(1.0-e2*sinLat*sinLat)
		lat = math.Atan2(pos.Z+e2*n*sinLat, p)
	}

	sinLat, cosLat := math.Sincos(lat)
	n := e.SemiMajorAxis / math.Sqrt(1.0-e2*sinLat*sinLat)

	if math.Abs(cosLat) > 1e-10 {
		elevation = p/cosLat - n
	} else {
		elevation = math.Abs(pos.Z)/math.Abs(sinLat) - n*(1.0-e2)
	}
	return lat, lon, elevation
}

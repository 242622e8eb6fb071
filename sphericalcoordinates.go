// Package georef converts positions and velocities between an
// Earth-referenced global frame and local tangent-plane frames anchored at
// a configurable origin, using an ellipsoidal Earth model.
//
// Four coordinate spaces are supported: Spherical (geodetic
// latitude/longitude/elevation), ECEF, Global (East-North-Up at the origin)
// and Local2 (Global rotated by a heading offset about the local vertical).
// Positions and velocities use gonum's r3.Vec.
package georef

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/terrabotics/georef/angle"
)

// elevationTolerance is the absolute tolerance applied to the elevation
// reference when comparing two frames for equality.
const elevationTolerance = 1e-6

// SphericalCoordinates holds the reference frame state: the surface model,
// the geodetic origin, and the heading offset of the Local2 axes, together
// with the derived origin ECEF position and ENU axis rotation.
//
// Instances are plain values with no external resources. Concurrent reads
// are safe as long as nothing mutates the instance; callers sharing one
// across goroutines must serialize setter calls themselves.
type SphericalCoordinates struct {
	surface   SurfaceType
	latitude  angle.Angle
	longitude angle.Angle
	elevation float64
	heading   angle.Angle

	// Derived state, recomputed by updateTransformation on every setter.
	ellipsoid       Ellipsoid
	origin          r3.Vec // reference origin in ECEF
	rotGlobalToECEF *r3.Mat
	cosHea, sinHea  float64
}

// New returns a reference frame on the WGS84 surface with a zero origin and
// zero heading offset.
func New() *SphericalCoordinates {
	return NewWithSurface(EarthWGS84)
}

// NewWithSurface returns a reference frame on the given surface with a zero
// origin and zero heading offset.
func NewWithSurface(surface SurfaceType) *SphericalCoordinates {
	return NewWithOrigin(surface, angle.Zero, angle.Zero, 0, angle.Zero)
}

// NewWithOrigin returns a fully configured reference frame. Latitude and
// longitude place the origin on the surface, elevation is meters above the
// ellipsoid, and heading rotates the Local2 axes relative to ENU.
func NewWithOrigin(surface SurfaceType, latitude, longitude angle.Angle,
	elevation float64, heading angle.Angle) *SphericalCoordinates {
	sc := &SphericalCoordinates{
		surface:   surface,
		latitude:  latitude,
		longitude: longitude,
		elevation: elevation,
		heading:   heading,
	}
	sc.updateTransformation()
	return sc
}

// Surface returns the configured surface tag, including any out-of-range
// value previously stored by SetSurface.
func (sc *SphericalCoordinates) Surface() SurfaceType { return sc.surface }

// SetSurface stores the surface tag verbatim, without validation. Tags
// outside the known presets keep the WGS84 geometry for transforms.
func (sc *SphericalCoordinates) SetSurface(surface SurfaceType) {
	sc.surface = surface
	sc.updateTransformation()
}

// LatitudeReference returns the origin latitude.
func (sc *SphericalCoordinates) LatitudeReference() angle.Angle {
	return sc.latitude
}

// SetLatitudeReference moves the origin to the given latitude.
func (sc *SphericalCoordinates) SetLatitudeReference(latitude angle.Angle) {
	sc.latitude = latitude
	sc.updateTransformation()
}

// LongitudeReference returns the origin longitude.
func (sc *SphericalCoordinates) LongitudeReference() angle.Angle {
	return sc.longitude
}

// SetLongitudeReference moves the origin to the given longitude.
func (sc *SphericalCoordinates) SetLongitudeReference(longitude angle.Angle) {
	sc.longitude = longitude
	sc.updateTransformation()
}

// ElevationReference returns the origin elevation in meters above the
// ellipsoid.
func (sc *SphericalCoordinates) ElevationReference() float64 {
	return sc.elevation
}

// SetElevationReference moves the origin to the given elevation in meters.
func (sc *SphericalCoordinates) SetElevationReference(elevation float64) {
	sc.elevation = elevation
	sc.updateTransformation()
}

// HeadingOffset returns the rotation of the Local2 axes relative to ENU.
func (sc *SphericalCoordinates) HeadingOffset() angle.Angle {
	return sc.heading
}

// SetHeadingOffset sets the rotation of the Local2 axes relative to ENU.
func (sc *SphericalCoordinates) SetHeadingOffset(heading angle.Angle) {
	sc.heading = heading
	sc.updateTransformation()
}

// Equal reports whether two frames agree on surface, origin and heading.
// Elevation compares within an absolute tolerance; the angular parameters
// and the surface tag compare exactly.
func (sc *SphericalCoordinates) Equal(other *SphericalCoordinates) bool {
	return sc.surface == other.surface &&
		sc.latitude == other.latitude &&
		sc.longitude == other.longitude &&
		sc.heading == other.heading &&
		scalar.EqualWithinAbs(sc.elevation, other.elevation, elevationTolerance)
}

// updateTransformation recomputes the cached origin ECEF position and the
// ENU axis rotation. Every setter ends here, so reads stay O(1) and the
// cache can never go stale.
func (sc *SphericalCoordinates) updateTransformation() {
	sc.ellipsoid = ellipsoidFor(sc.surface)

	sinLat, cosLat := math.Sincos(sc.latitude.Radian())
	sinLon, cosLon := math.Sincos(sc.longitude.Radian())

	// Columns are the East, North and Up unit vectors expressed in ECEF
	// axes. The matrix is orthonormal, so its transpose maps ECEF back to
	// ENU.
	sc.rotGlobalToECEF = r3.NewMat([]float64{
		-sinLon, -cosLon * sinLat, cosLon * cosLat,
		cosLon, -sinLon * sinLat, sinLon * cosLat,
		0, cosLat, sinLat,
	})

	sc.sinHea, sc.cosHea = math.Sincos(sc.heading.Radian())

	sc.origin = sc.ellipsoid.GeodeticToECEF(
		sc.latitude.Radian(), sc.longitude.Radian(), sc.elevation)
}

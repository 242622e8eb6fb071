package georef

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/terrabotics/georef/angle"
)

// PositionTransform converts a position from the in frame to the out frame.
// Spherical vectors pack latitude (radians) in X, longitude (radians) in Y
// and elevation (meters) in Z.
//
// All conversions route through ECEF as the common hub. The transform is
// total: a coordinate tag outside the four known frames leaves the input
// untouched rather than raising an error.
func (sc *SphericalCoordinates) PositionTransform(pos r3.Vec, in, out CoordinateType) r3.Vec {
	if in == out {
		return pos
	}

	ecef, ok := sc.positionToECEF(pos, in)
	if !ok {
		Logf("georef: unknown source coordinate type %d", in)
		return pos
	}
	res, ok := sc.positionFromECEF(ecef, out)
	if !ok {
		Logf("georef: unknown destination coordinate type %d", out)
		return pos
	}
	return res
}

// positionToECEF lifts a position in the given frame onto the ECEF hub.
// The second return is false for a tag with no known edge.
func (sc *SphericalCoordinates) positionToECEF(pos r3.Vec, in CoordinateType) (r3.Vec, bool) {
	switch in {
	case Spherical:
		return sc.ellipsoid.GeodeticToECEF(pos.X, pos.Y, pos.Z), true
	case ECEF:
		return pos, true
	case Global:
		return r3.Add(sc.origin, sc.rotGlobalToECEF.MulVec(pos)), true
	case Local2:
		return r3.Add(sc.origin, sc.rotGlobalToECEF.MulVec(sc.localToGlobal(pos))), true
	default:
		return r3.Vec{}, false
	}
}

// positionFromECEF projects an ECEF position into the requested frame.
func (sc *SphericalCoordinates) positionFromECEF(ecef r3.Vec, out CoordinateType) (r3.Vec, bool) {
	switch out {
	case Spherical:
		lat, lon, elevation := sc.ellipsoid.ECEFToGeodetic(ecef)
		return r3.Vec{X: lat, Y: lon, Z: elevation}, true
	case ECEF:
		return ecef, true
	case Global:
		return sc.rotGlobalToECEF.MulVecTrans(r3.Sub(ecef, sc.origin)), true
	case Local2:
		return sc.globalToLocal(sc.rotGlobalToECEF.MulVecTrans(r3.Sub(ecef, sc.origin))), true
	default:
		return r3.Vec{}, false
	}
}

// VelocityTransform converts a velocity from the in frame to the out frame.
// Velocities are translation-invariant, so every edge is rotation-only. A
// velocity cannot be expressed in geodetic coordinates: Spherical on either
// side, like any unknown tag, returns the input unchanged.
func (sc *SphericalCoordinates) VelocityTransform(vel r3.Vec, in, out CoordinateType) r3.Vec {
	if in == out || in == Spherical || out == Spherical {
		return vel
	}

	var ecef r3.Vec
	switch in {
	case ECEF:
		ecef = vel
	case Global:
		ecef = sc.rotGlobalToECEF.MulVec(vel)
	case Local2:
		ecef = sc.rotGlobalToECEF.MulVec(sc.localToGlobal(vel))
	default:
		Logf("georef: unknown source coordinate type %d", in)
		return vel
	}

	switch out {
	case ECEF:
		return ecef
	case Global:
		return sc.rotGlobalToECEF.MulVecTrans(ecef)
	case Local2:
		return sc.globalToLocal(sc.rotGlobalToECEF.MulVecTrans(ecef))
	default:
		Logf("georef: unknown destination coordinate type %d", out)
		return vel
	}
}

// localToGlobal rotates a Local2 vector into the ENU axes: a
// counter-clockwise rotation by the heading offset about the local
// vertical.
func (sc *SphericalCoordinates) localToGlobal(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: v.X*sc.cosHea - v.Y*sc.sinHea,
		Y: v.X*sc.sinHea + v.Y*sc.cosHea,
		Z: v.Z,
	}
}

// globalToLocal applies the inverse heading rotation.
func (sc *SphericalCoordinates) globalToLocal(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: v.X*sc.cosHea + v.Y*sc.sinHea,
		Y: -v.X*sc.sinHea + v.Y*sc.cosHea,
		Z: v.Z,
	}
}

// SphericalFromLocalPosition converts a Local2 position to geodetic
// coordinates, packing latitude and longitude in degrees into X and Y and
// elevation in meters into Z.
func (sc *SphericalCoordinates) SphericalFromLocalPosition(local r3.Vec) r3.Vec {
	sph := sc.PositionTransform(local, Local2, Spherical)
	return r3.Vec{
		X: angle.FromRadians(sph.X).Degree(),
		Y: angle.FromRadians(sph.Y).Degree(),
		Z: sph.Z,
	}
}

// LocalFromSphericalPosition converts geodetic coordinates, with latitude
// and longitude in degrees, to a Local2 position. It inverts
// SphericalFromLocalPosition up to the ellipsoid inversion tolerance.
func (sc *SphericalCoordinates) LocalFromSphericalPosition(sph r3.Vec) r3.Vec {
	rad := r3.Vec{
		X: angle.FromDegrees(sph.X).Radian(),
		Y: angle.FromDegrees(sph.Y).Radian(),
		Z: sph.Z,
	}
	return sc.PositionTransform(rad, Spherical, Local2)
}

// GlobalFromLocalVelocity rotates a Local2 velocity into the Global ENU
// axes. Only the heading edge applies, so the result reads directly as
// East, North, Up components.
func (sc *SphericalCoordinates) GlobalFromLocalVelocity(local r3.Vec) r3.Vec {
	return sc.localToGlobal(local)
}

// LocalFromGlobalVelocity rotates a Global ENU velocity into the Local2
// axes. It is the exact algebraic inverse of GlobalFromLocalVelocity.
func (sc *SphericalCoordinates) LocalFromGlobalVelocity(global r3.Vec) r3.Vec {
	return sc.globalToLocal(global)
}

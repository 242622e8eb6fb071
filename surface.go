package georef

import "strconv"

// SurfaceType tags a reference ellipsoid preset. It is deliberately an open
// value: SetSurface stores whatever tag the caller supplies and Surface
// echoes it back, so unrecognized tags survive a round trip through the
// frame state. Transforms fall back to the WGS84 geometry for tags they do
// not know.
type SurfaceType int

// EarthWGS84 is the WGS84 Earth ellipsoid, the default surface.
const EarthWGS84 SurfaceType = 1

var surfaceNames = map[string]SurfaceType{
	"EARTH_WGS84": EarthWGS84,
}

// Convert looks up a surface preset by its case-sensitive name. Unknown
// names, including the empty string, resolve to EarthWGS84 rather than an
// error.
func Convert(name string) SurfaceType {
	if st, ok := surfaceNames[name]; ok {
		return st
	}
	return EarthWGS84
}

// String returns the preset name, or the raw tag value for surfaces outside
// the known presets.
func (st SurfaceType) String() string {
	for name, known := range surfaceNames {
		if st == known {
			return name
		}
	}
	return strconv.Itoa(int(st))
}

// CoordinateType names a coordinate space understood by the transforms.
// Values outside the four spaces below degrade every transform to an
// identity no-op on the input; they are never an error.
type CoordinateType int

const (
	// Spherical is geodetic latitude, longitude and elevation relative to
	// the reference ellipsoid.
	Spherical CoordinateType = iota + 1
	// ECEF is the Earth-Centered-Earth-Fixed Cartesian frame.
	ECEF
	// Global is the East-North-Up tangent frame at the reference origin.
	Global
	// Local2 is the Global frame rotated by the heading offset about the
	// local vertical.
	Local2
)

// String returns the conventional name of the coordinate space.
func (ct CoordinateType) String() string {
	switch ct {
	case Spherical:
		return "SPHERICAL"
	case ECEF:
		return "ECEF"
	case Global:
		return "GLOBAL"
	case Local2:
		return "LOCAL2"
	default:
		return strconv.Itoa(int(ct))
	}
}

package georef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	assert.Equal(t, EarthWGS84, Convert("EARTH_WGS84"))

	// Unknown names fall back to the default preset rather than erroring.
	assert.Equal(t, EarthWGS84, Convert("OTHER-COORD"))
	assert.Equal(t, EarthWGS84, Convert(""))
	assert.Equal(t, EarthWGS84, Convert("earth_wgs84"))
}

// SetSurface stores out-of-range tags verbatim; Surface must echo them back.
func TestSetSurfaceOutOfRange(t *testing.T) {
	sc := New()
	sc.SetSurface(SurfaceType(2))
	assert.Equal(t, SurfaceType(2), sc.Surface())

	sc.SetSurface(SurfaceType(-3))
	assert.Equal(t, SurfaceType(-3), sc.Surface())
}

func TestSurfaceTypeString(t *testing.T) {
	assert.Equal(t, "EARTH_WGS84", EarthWGS84.String())
	assert.Equal(t, "7", SurfaceType(7).String())
}

func TestCoordinateTypeString(t *testing.T) {
	assert.Equal(t, "SPHERICAL", Spherical.String())
	assert.Equal(t, "ECEF", ECEF.String())
	assert.Equal(t, "GLOBAL", Global.String())
	assert.Equal(t, "LOCAL2", Local2.String())
	assert.Equal(t, "9", CoordinateType(9).String())
}

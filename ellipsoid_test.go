package georef

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/terrabotics/georef/angle"
)

func TestWGS84Constants(t *testing.T) {
	assert.InDelta(t, 6378137.0, WGS84.SemiMajorAxis, 1e-9)
	assert.InDelta(t, 6356752.314245, WGS84.SemiMinorAxis, 1e-6)
	assert.InDelta(t, 1.0/298.257223563, WGS84.Flattening, 1e-15)
	assert.InDelta(t, 6.69437999014e-3, WGS84.EccentricitySquared(), 1e-12)
}

// Reference ECEF coordinate obtained with
// gdaltransform -s_srs WGS84 -t_srs EPSG:4978.
func TestGeodeticToECEFReference(t *testing.T) {
	lat := angle.FromDegrees(37.3877349).Radian()
	lon := angle.FromDegrees(-122.0651166).Radian()

	got := WGS84.GeodeticToECEF(lat, lon, 32.0)
	assert.InDelta(t, -2693701.91434394, got.X, 8e-2)
	assert.InDelta(t, -4299942.14687992, got.Y, 8e-2)
	assert.InDelta(t, 3851691.0393571, got.Z, 1e-2)
}

func TestECEFToGeodeticRoundTrip(t *testing.T) {
	cases := []struct {
		name           string
		latDeg, lonDeg float64
		elevation      float64
	}{
		{"equator prime meridian", 0, 0, 0},
		{"mid latitude", 45, 45, 1000},
		{"southern hemisphere", -60, 120, 500},
		{"reference point", 37.3877349, -122.0651166, 32},
		{"north pole", 90, 0, 10},
		{"south pole", -90, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lat := angle.FromDegrees(c.latDeg).Radian()
			lon := angle.FromDegrees(c.lonDeg).Radian()

			ecef := WGS84.GeodeticToECEF(lat, lon, c.elevation)
			gotLat, gotLon, gotElev := WGS84.ECEFToGeodetic(ecef)

			require.InDelta(t, lat, gotLat, 1e-9)
			if c.latDeg > -90 && c.latDeg < 90 {
				require.InDelta(t, lon, gotLon, 1e-9)
			}
			require.InDelta(t, c.elevation, gotElev, 1e-6)
		})
	}
}

// The inversion is bounded, so degenerate inputs still produce a value.
func TestECEFToGeodeticDegenerate(t *testing.T) {
	t.Run("polar axis", func(t *testing.T) {
		lat, _, elev := WGS84.ECEFToGeodetic(r3.Vec{Z: 7000000})
		assert.InDelta(t, angle.HalfPi.Radian(), lat, 1e-9)
		assert.InDelta(t, 7000000-WGS84.SemiMinorAxis, elev, 1e-6)
	})
	t.Run("earth center", func(t *testing.T) {
		lat, lon, elev := WGS84.ECEFToGeodetic(r3.Vec{})
		assert.False(t, math.IsNaN(lat) || math.IsNaN(lon) || math.IsNaN(elev))
	})
}

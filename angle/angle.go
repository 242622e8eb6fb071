// Package angle provides a scalar angle type with radian and degree
// conversions. Angles compare and combine with the native float operators.
package angle

import (
	"math"
	"strconv"
)

// Angle is a planar angle stored in radians. The zero value is a zero angle.
type Angle float64

// Common angle values.
const (
	Zero   Angle = 0
	Pi     Angle = math.Pi
	HalfPi Angle = math.Pi / 2
	TwoPi  Angle = 2 * math.Pi
)

// FromRadians returns the angle for a value in radians.
func FromRadians(rad float64) Angle { return Angle(rad) }

// FromDegrees returns the angle for a value in degrees.
func FromDegrees(deg float64) Angle { return Angle(deg * math.Pi / 180.0) }

// Radian returns the angle in radians.
func (a Angle) Radian() float64 { return float64(a) }

// Degree returns the angle in degrees.
func (a Angle) Degree() float64 { return float64(a) * 180.0 / math.Pi }

// Abs returns the magnitude of the angle.
func (a Angle) Abs() Angle { return Angle(math.Abs(float64(a))) }

// Normalized returns the angle wrapped into the range (-Pi, Pi].
func (a Angle) Normalized() Angle {
	rad := math.Mod(float64(a), 2*math.Pi)
	if rad > math.Pi {
		rad -= 2 * math.Pi
	} else if rad <= -math.Pi {
		rad += 2 * math.Pi
	}
	return Angle(rad)
}

// String formats the angle in radians.
func (a Angle) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}

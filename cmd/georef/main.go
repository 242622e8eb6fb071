// Command georef converts a position or velocity between the geodetic,
// ECEF, global ENU and heading-rotated local frames of a configured
// reference origin.
//
// Spherical positions are given and printed in degrees (latitude,
// longitude) and meters (elevation); every other frame is meters.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/terrabotics/georef"
	"github.com/terrabotics/georef/angle"
)

// frameNames maps flag spellings to coordinate types.
var frameNames = map[string]georef.CoordinateType{
	"spherical": georef.Spherical,
	"ecef":      georef.ECEF,
	"global":    georef.Global,
	"local":     georef.Local2,
	"local2":    georef.Local2,
}

// parseFrame resolves a frame flag value, case-insensitively.
func parseFrame(name string) (georef.CoordinateType, error) {
	ct, ok := frameNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown frame %q (want spherical, ecef, global or local2)", name)
	}
	return ct, nil
}

// parseVec parses a comma-separated "x,y,z" triple.
func parseVec(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("want three comma-separated components, got %d", len(parts))
	}
	var out [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("invalid component %q: %w", p, err)
		}
		out[i] = v
	}
	return r3.Vec{X: out[0], Y: out[1], Z: out[2]}, nil
}

func main() {
	surface := flag.String("surface", "EARTH_WGS84", "surface preset name")
	latDeg := flag.Float64("lat", 0, "origin latitude in degrees")
	lonDeg := flag.Float64("lon", 0, "origin longitude in degrees")
	elev := flag.Float64("elev", 0, "origin elevation in meters")
	headingDeg := flag.Float64("heading", 0, "heading offset in degrees")
	from := flag.String("from", "spherical", "source frame")
	to := flag.String("to", "local2", "destination frame")
	input := flag.String("pos", "", "vector to convert as x,y,z (spherical: lat°,lon°,elev)")
	isVel := flag.Bool("vel", false, "treat the input as a velocity")
	jsonOut := flag.Bool("json", false, "print the result as JSON")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	in, err := parseFrame(*from)
	if err != nil {
		log.Fatalf("parse -from: %v", err)
	}
	out, err := parseFrame(*to)
	if err != nil {
		log.Fatalf("parse -to: %v", err)
	}
	vec, err := parseVec(*input)
	if err != nil {
		log.Fatalf("parse -pos: %v", err)
	}

	sc := georef.NewWithOrigin(georef.Convert(*surface),
		angle.FromDegrees(*latDeg), angle.FromDegrees(*lonDeg),
		*elev, angle.FromDegrees(*headingDeg))

	var res r3.Vec
	if *isVel {
		res = sc.VelocityTransform(vec, in, out)
	} else {
		// The library packs spherical positions in radians; the CLI
		// speaks degrees throughout.
		if in == georef.Spherical {
			vec.X = angle.FromDegrees(vec.X).Radian()
			vec.Y = angle.FromDegrees(vec.Y).Radian()
		}
		res = sc.PositionTransform(vec, in, out)
		if out == georef.Spherical {
			res.X = angle.FromRadians(res.X).Degree()
			res.Y = angle.FromRadians(res.Y).Degree()
		}
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(map[string]float64{"x": res.X, "y": res.Y, "z": res.Z}); err != nil {
			log.Fatalf("encode result: %v", err)
		}
		return
	}
	fmt.Printf("%.9f %.9f %.9f\n", res.X, res.Y, res.Z)
}

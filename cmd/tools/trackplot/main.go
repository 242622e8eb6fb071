// Command trackplot renders the East/North ground track of a geodetic fix
// log. Input is CSV with latitude,longitude[,elevation] per row (degrees,
// degrees, meters). The first fix anchors the local frame unless an origin
// is given with -lat/-lon.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/terrabotics/georef"
	"github.com/terrabotics/georef/angle"
)

func main() {
	input := flag.String("input", "", "CSV file of lat,lon[,elev] fixes (degrees, meters)")
	output := flag.String("output", "track.png", "output PNG path")
	latDeg := flag.Float64("lat", 0, "origin latitude in degrees (default: first fix)")
	lonDeg := flag.Float64("lon", 0, "origin longitude in degrees (default: first fix)")
	elev := flag.Float64("elev", 0, "origin elevation in meters (default: first fix)")
	headingDeg := flag.Float64("heading", 0, "heading offset in degrees")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer f.Close()

	fixes, err := readFixes(f)
	if err != nil {
		log.Fatalf("read fixes: %v", err)
	}
	if len(fixes) == 0 {
		log.Fatal("no fixes in input")
	}

	originExplicit := false
	flag.Visit(func(fl *flag.Flag) {
		if fl.Name == "lat" || fl.Name == "lon" {
			originExplicit = true
		}
	})

	origin := fixes[0]
	if originExplicit {
		origin = r3.Vec{X: *latDeg, Y: *lonDeg, Z: *elev}
	}

	sc := georef.NewWithOrigin(georef.EarthWGS84,
		angle.FromDegrees(origin.X), angle.FromDegrees(origin.Y),
		origin.Z, angle.FromDegrees(*headingDeg))

	points := make(plotter.XYs, 0, len(fixes))
	for _, fix := range fixes {
		local := sc.LocalFromSphericalPosition(fix)
		points = append(points, plotter.XY{X: local.X, Y: local.Y})
	}

	if err := plotTrack(points, *output); err != nil {
		log.Fatalf("plot track: %v", err)
	}
	log.Printf("plotted %d fixes to %s (origin %.7f°, %.7f°)",
		len(points), *output, origin.X, origin.Y)
}

// readFixes parses CSV rows into geodetic fixes, tolerating a header row
// and blank lines. Elevation defaults to zero when the column is absent.
func readFixes(r io.Reader) ([]r3.Vec, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var fixes []r3.Vec
	row := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++
		if len(rec) < 2 {
			continue
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			if row == 1 {
				// Header row.
				continue
			}
			return nil, fmt.Errorf("row %d: invalid latitude %q: %w", row, rec[0], err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid longitude %q: %w", row, rec[1], err)
		}
		elev := 0.0
		if len(rec) > 2 && strings.TrimSpace(rec[2]) != "" {
			if elev, err = strconv.ParseFloat(strings.TrimSpace(rec[2]), 64); err != nil {
				return nil, fmt.Errorf("row %d: invalid elevation %q: %w", row, rec[2], err)
			}
		}
		fixes = append(fixes, r3.Vec{X: lat, Y: lon, Z: elev})
	}
	return fixes, nil
}

// plotTrack renders the ENU ground track to a PNG file.
func plotTrack(points plotter.XYs, outPath string) error {
	p := plot.New()
	p.Title.Text = "Ground track (local frame)"
	p.X.Label.Text = "East (m)"
	p.Y.Label.Text = "North (m)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	line.Width = vg.Points(1)
	p.Add(line)

	if err := p.Save(8*vg.Inch, 8*vg.Inch, outPath); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

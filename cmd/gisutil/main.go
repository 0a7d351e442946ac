package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	geo "github.com/paulmach/go.geo"
	"github.com/pelias/gisutil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	app := newApp(os.Stdout, logger)
	if err := app.Run(os.Args); err != nil {
		logger.WithError(err).Fatal("gisutil failed")
	}
}

func newApp(out io.Writer, logger logrus.FieldLogger) *cli.App {
	return &cli.App{
		Name:   "gisutil",
		Usage:  "geometry and table helpers for gis scripts",
		Writer: out,
		Commands: []*cli.Command{
			featureClassCommand(),
			traverseCommand(),
			areaCommand(logger),
			circleCommand(logger),
		},
	}
}

func featureClassCommand() *cli.Command {
	return &cli.Command{
		Name:      "featureclass",
		Usage:     "print the path of a shapefile or geodatabase feature class",
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "workspace", Aliases: []string{"w"}, Usage: "folder or .gdb", Required: true},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("featureclass: expected exactly one feature class name")
			}
			_, err := fmt.Fprintln(c.App.Writer, gisutil.GetFeatureClass(c.Args().First(), c.String("workspace")))
			return err
		},
	}
}

func pointFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{Name: "x", Usage: "x coordinate"},
		&cli.Float64Flag{Name: "y", Usage: "y coordinate"},
	}
}

func traverseCommand() *cli.Command {
	return &cli.Command{
		Name:  "traverse",
		Usage: "project a survey line from a start point",
		Flags: append(pointFlags(),
			&cli.Float64Flag{Name: "distance", Aliases: []string{"d"}, Required: true},
			&cli.Float64Flag{Name: "bearing", Aliases: []string{"b"}, Usage: "degrees"},
			&cli.BoolFlag{Name: "compass", Usage: "measure bearing clockwise from north"},
			&cli.BoolFlag{Name: "geojson", Usage: "print a LineString feature"},
		),
		Action: func(c *cli.Context) error {
			from := geo.Point{c.Float64("x"), c.Float64("y")}
			distance, bearing := c.Float64("distance"), c.Float64("bearing")

			to := gisutil.TraverseSurveyLine(from, distance, bearing)
			if c.Bool("compass") {
				to = gisutil.TraverseCompassBearing(from, distance, bearing)
			}

			if c.Bool("geojson") {
				return printJSON(c.App.Writer, gisutil.SurveyLineFeature(geo.NewLine(&from, &to)))
			}
			return gisutil.WriteCSV(c.App.Writer, gisutil.PointHeader, []gisutil.TableRow{{to[0], to[1]}})
		},
	}
}

func areaCommand(logger logrus.FieldLogger) *cli.Command {
	return &cli.Command{
		Name:      "area",
		Usage:     "planar area of a closed ring",
		ArgsUsage: "X,Y X,Y ...",
		Action: func(c *cli.Context) error {
			ring, err := parsePoints(c.Args().Slice())
			if err != nil {
				return err
			}
			if !gisutil.IsPointSetClosed(ring) {
				logger.WithField("points", ring.Length()).Warn("ring is not closed, area may be wrong")
			}
			_, err = fmt.Fprintln(c.App.Writer, strconv.FormatFloat(gisutil.PolygonArea(ring), 'f', -1, 64))
			return err
		},
	}
}

func circleCommand(logger logrus.FieldLogger) *cli.Command {
	return &cli.Command{
		Name:  "circle",
		Usage: "approximate a circle as a polygon",
		Flags: append(pointFlags(),
			&cli.Float64Flag{Name: "radius", Aliases: []string{"r"}, Required: true},
			&cli.IntFlag{Name: "sides", Usage: "build a closed regular polygon instead of the legacy 360 point circle"},
			&cli.StringFlag{Name: "csv", Usage: "write x,y rows to this file"},
			&cli.BoolFlag{Name: "geojson", Usage: "print a Polygon feature"},
		),
		Action: func(c *cli.Context) error {
			center := geo.Point{c.Float64("x"), c.Float64("y")}
			radius := c.Float64("radius")
			if radius < 0 {
				logger.WithField("radius", radius).Warn("negative radius")
			}

			points := gisutil.Circle(center, radius)
			if c.IsSet("sides") {
				var err error
				if points, err = gisutil.RegularPolygon(center, radius, c.Int("sides")); err != nil {
					return err
				}
			}

			if path := c.String("csv"); path != "" {
				if err := gisutil.SaveToCSV(gisutil.PointHeader, gisutil.PointSetRows(points), path); err != nil {
					return err
				}
				logger.WithFields(logrus.Fields{"path": path, "points": points.Length()}).Info("wrote circle")
			}

			if c.Bool("geojson") {
				return printJSON(c.App.Writer, gisutil.PolygonFeature(gisutil.ClosePolygon(points)))
			}
			if c.String("csv") == "" {
				return gisutil.WriteCSV(c.App.Writer, gisutil.PointHeader, gisutil.PointSetRows(points))
			}
			return nil
		},
	}
}

// parsePoints reads "x,y" pairs
func parsePoints(args []string) (*geo.PointSet, error) {
	ps := geo.NewPointSet()
	for _, arg := range args {
		parts := strings.Split(arg, ",")
		if len(parts) != 2 {
			return nil, errors.Errorf("invalid point %q, expected x,y", arg)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x in %q", arg)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y in %q", arg)
		}
		ps.Push(geo.NewPoint(x, y))
	}
	return ps, nil
}

func printJSON(w io.Writer, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshal geojson")
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

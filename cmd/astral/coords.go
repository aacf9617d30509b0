package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/astral-go/astral/coord"
	"github.com/astral-go/astral/output"
	"github.com/astral-go/astral/timescale"
	"github.com/astral-go/astral/units"
)

func (a *app) coordsCmd(args []string) int {
	if len(args) == 0 {
		return usageFail("usage: astral coords {transform COORD --to FRAME [--from FRAME] [--lat F --lon F --jd F] | parse COORD}")
	}
	switch args[0] {
	case "transform":
		return a.coordsTransform(args[1:])
	case "parse":
		return a.coordsParse(args[1:])
	}
	return usageFail(fmt.Sprintf("coords: unknown subcommand %q", args[0]))
}

func (a *app) coordsTransform(args []string) int {
	fs := flag.NewFlagSet("coords transform", flag.ContinueOnError)
	from := fs.String("from", "icrs", "input frame: icrs or galactic")
	to := fs.String("to", "", "target frame: icrs|galactic|altaz")
	lat := fs.Float64("lat", 0, "observer latitude, degrees (+N)")
	lon := fs.Float64("lon", 0, "observer longitude, degrees (+E)")
	jdFlag := fs.Float64("jd", 0, "Julian Date of observation")
	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			return exitUsage
		}
		if fs.NArg() == 0 {
			break
		}
		pos = append(pos, fs.Arg(0))
		args = fs.Args()[1:]
	}
	if len(pos) != 1 || *to == "" {
		return usageFail("usage: astral coords transform 'COORD' --to FRAME [--from FRAME] [--lat F --lon F --jd F]")
	}

	in, err := parseInputFrame(pos[0], *from)
	if err != nil {
		return fail(err)
	}

	var ctx *coord.Context
	targetKind, err := coord.ParseFrameKind(*to)
	if err != nil {
		return fail(err)
	}
	if targetKind == coord.KindHorizontal {
		if !flagWasSet(fs, "lat") || !flagWasSet(fs, "lon") || !flagWasSet(fs, "jd") {
			return usageFail("coords transform: --lat, --lon and --jd are required for horizontal output")
		}
		ctx = coord.At(timescale.New(*jdFlag), units.FromDegrees(*lat), units.FromDegrees(*lon))
	}

	res, err := coord.Transform(in, *to, ctx, a.rec)
	if err != nil {
		return fail(err)
	}
	return a.printFrame(res)
}

// parseInputFrame reads a coordinate string in the declared input frame.
func parseInputFrame(s, from string) (coord.Frame, error) {
	kind, err := coord.ParseFrameKind(from)
	if err != nil {
		return coord.Frame{}, err
	}
	switch kind {
	case coord.KindGalactic:
		parts := strings.Fields(s)
		if len(parts) != 2 {
			return coord.Frame{}, fmt.Errorf("coords: galactic input wants 'L B' in degrees, got %q", s)
		}
		l, err := parseFloatArg(parts[0], "galactic longitude")
		if err != nil {
			return coord.Frame{}, err
		}
		b, err := parseFloatArg(parts[1], "galactic latitude")
		if err != nil {
			return coord.Frame{}, err
		}
		g, err := coord.GalacticFromDegrees(l, b)
		if err != nil {
			return coord.Frame{}, err
		}
		return coord.InGalactic(g), nil
	case coord.KindICRS:
		c, err := coord.ParseICRS(s)
		if err != nil {
			return coord.Frame{}, err
		}
		return coord.InICRS(c), nil
	}
	return coord.Frame{}, fmt.Errorf("coords: horizontal cannot be an input frame")
}

func (a *app) printFrame(f coord.Frame) int {
	res := &output.Result{}
	switch f.Kind {
	case coord.KindICRS:
		c := f.ICRS
		res.Title = "ICRS (J2000)"
		res.Add("ra_degrees", "RA", c.RA.Degrees(), "deg").
			Add("dec_degrees", "Dec", c.Dec.Degrees(), "deg").
			Add("ra_hms", "RA (HMS)", c.RA.FormatHMS(a.prec.TimeSeconds, true), "").
			Add("dec_dms", "Dec (DMS)", c.Dec.FormatDMS(a.prec.AngleArcsec, true), "")
	case coord.KindGalactic:
		c := f.Galactic
		res.Title = "Galactic"
		res.Add("l_degrees", "l", c.L.Degrees(), "deg").
			Add("b_degrees", "b", c.B.Degrees(), "deg")
	case coord.KindHorizontal:
		c := f.Horizontal
		res.Title = "Horizontal"
		res.Add("altitude_degrees", "Altitude", c.Alt.Degrees(), "deg").
			Add("azimuth_degrees", "Azimuth", c.Az.Degrees(), "deg")
	}
	return a.print(res)
}

func (a *app) coordsParse(args []string) int {
	if len(args) != 1 {
		return usageFail("usage: astral coords parse 'RA DEC'")
	}
	c, err := coord.ParseICRS(args[0])
	if err != nil {
		return fail(err)
	}
	return a.printFrame(coord.InICRS(c))
}

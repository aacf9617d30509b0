package main

import (
	"flag"
	"fmt"

	"github.com/astral-go/astral/coord"
	"github.com/astral-go/astral/output"
	"github.com/astral-go/astral/units"
)

func (a *app) anglesCmd(args []string) int {
	if len(args) == 0 {
		return usageFail("usage: astral angles {sep C1 C2 | pa C1 C2 | convert VALUE [--unit U]}")
	}
	switch args[0] {
	case "sep":
		return a.anglesSep(args[1:], false)
	case "pa":
		return a.anglesSep(args[1:], true)
	case "convert":
		return a.anglesConvert(args[1:])
	}
	return usageFail(fmt.Sprintf("angles: unknown subcommand %q", args[0]))
}

// anglesSep handles both separation and position angle: the two commands
// share parsing and differ only in the formula applied.
func (a *app) anglesSep(args []string, positionAngle bool) int {
	if len(args) != 2 {
		return usageFail("usage: astral angles {sep|pa} 'RA1 DEC1' 'RA2 DEC2'")
	}
	c1, err := coord.ParseICRS(args[0])
	if err != nil {
		return fail(err)
	}
	c2, err := coord.ParseICRS(args[1])
	if err != nil {
		return fail(err)
	}

	res := &output.Result{}
	if positionAngle {
		pa := coord.PositionAngle(c1, c2, a.rec)
		res.Title = "Position Angle"
		res.Add("position_angle_degrees", "Position angle", pa.Degrees(), "deg").
			Add("position_angle_dms", "DMS", pa.FormatDMS(a.prec.AngleArcsec, true), "")
	} else {
		sep := coord.Separation(c1, c2, a.rec)
		res.Title = "Angular Separation"
		res.Add("separation_degrees", "Separation", sep.Degrees(), "deg").
			Add("separation_dms", "DMS", sep.FormatDMS(a.prec.AngleArcsec, true), "").
			Add("separation_arcmin", "Arcminutes", sep.Arcminutes(), "arcmin")
	}
	return a.print(res)
}

func (a *app) anglesConvert(args []string) int {
	fs := flag.NewFlagSet("angles convert", flag.ContinueOnError)
	unit := fs.String("unit", "deg", "input unit when the value is bare: deg|rad|arcmin|arcsec|hours")
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
	if len(pos) != 1 {
		return usageFail("usage: astral angles convert VALUE [--unit deg|rad|arcmin|arcsec|hours]")
	}

	raw := pos[0]
	var ang units.Angle
	if v, err := parseFloatArg(raw, "angle"); err == nil {
		switch *unit {
		case "deg":
			ang = units.FromDegrees(v)
		case "rad":
			ang = units.FromRadians(v)
		case "arcmin":
			ang = units.FromArcminutes(v)
		case "arcsec":
			ang = units.FromArcseconds(v)
		case "hours":
			ang = units.FromHours(v)
		default:
			return usageFail(fmt.Sprintf("angles convert: unknown unit %q", *unit))
		}
	} else {
		parsed, perr := units.Parse(raw)
		if perr != nil {
			return fail(perr)
		}
		ang = parsed
	}

	a.rec.Step("Conversions", fmt.Sprintf(
		"radians = %.12f\ndegrees = %.10f\nhours = %.10f",
		ang.Radians(), ang.Degrees(), ang.Hours()))

	res := &output.Result{Title: "Angle"}
	res.Add("degrees", "Degrees", ang.Degrees(), "deg").
		Add("radians", "Radians", ang.Radians(), "rad").
		Add("hours", "Hours", ang.Hours(), "h").
		Add("arcminutes", "Arcminutes", ang.Arcminutes(), "arcmin").
		Add("arcseconds", "Arcseconds", ang.Arcseconds(), "arcsec").
		Add("dms", "DMS", ang.FormatDMS(a.prec.AngleArcsec, true), "").
		Add("hms", "HMS", ang.FormatHMS(a.prec.TimeSeconds, true), "")
	return a.print(res)
}

package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/astral-go/astral/coord"
	"github.com/astral-go/astral/output"
	"github.com/astral-go/astral/units"
	"github.com/astral-go/astral/visibility"
)

func (a *app) visCmd(args []string) int {
	if len(args) == 0 {
		return usageFail("usage: astral vis {altitude COORD | transit COORD | riseset COORD [--horizon DEG] | moonsep COORD | report COORD | airmass ALT_DEG}")
	}
	sub := args[0]

	if sub == "airmass" {
		if len(args) != 2 {
			return usageFail("usage: astral vis airmass ALT_DEG")
		}
		altDeg, err := parseFloatArg(args[1], "altitude")
		if err != nil {
			return usageFail(err.Error())
		}
		x := visibility.Airmass(units.FromDegrees(altDeg))
		res := &output.Result{Title: "Airmass"}
		res.Add("altitude_degrees", "Altitude", altDeg, "deg")
		if math.IsInf(x, 1) {
			res.Add("airmass", "Airmass", nil, "")
		} else {
			res.Add("airmass", "Airmass", x, "")
		}
		return a.print(res)
	}

	if len(args) < 2 {
		return usageFail(fmt.Sprintf("usage: astral vis %s 'RA DEC' [flags]", sub))
	}
	target, err := coord.ParseICRS(args[1])
	if err != nil {
		return fail(err)
	}

	fs := flag.NewFlagSet("vis "+sub, flag.ContinueOnError)
	var loc locationFlags
	loc.register(fs)
	jdFlag := fs.Float64("jd", 0, "Julian Date (default: now)")
	horizon := fs.Float64("horizon", 0, "horizon altitude for rise/set, degrees")
	if err := fs.Parse(args[2:]); err != nil {
		return exitUsage
	}
	jd := jdOrNow(*jdFlag, flagWasSet(fs, "jd"))

	if sub == "moonsep" {
		sep := visibility.MoonSeparation(target, jd)
		res := &output.Result{Title: "Moon Separation"}
		res.Add("julian_date", "Julian Date", jd.JD(), "").
			Add("separation_degrees", "Separation", sep.Degrees(), "deg")
		return a.print(res)
	}

	obs, err := loc.resolve(fs)
	if err != nil {
		return usageFail(err.Error())
	}

	switch sub {
	case "altitude":
		alt := visibility.TargetAltitude(target, obs, jd)
		az := visibility.TargetAzimuth(target, obs, jd)
		x := visibility.Airmass(alt)
		res := &output.Result{Title: "Target Altitude"}
		res.Add("julian_date", "Julian Date", jd.JD(), "").
			Add("altitude_degrees", "Altitude", alt.Degrees(), "deg").
			Add("azimuth_degrees", "Azimuth", az.Degrees(), "deg")
		if math.IsInf(x, 1) {
			res.Add("airmass", "Airmass", nil, "")
		} else {
			res.Add("airmass", "Airmass", x, "")
		}
		return a.print(res)

	case "transit":
		t := visibility.TransitTime(target, obs, jd)
		alt := visibility.TransitAltitude(target, obs)
		res := &output.Result{Title: "Meridian Transit"}
		res.Add("transit_jd", "Transit JD", t.JD(), "").
			Add("transit_utc", "Transit UTC", fmtTime(t), "").
			Add("transit_altitude_degrees", "Transit altitude", alt.Degrees(), "deg")
		return a.print(res)

	case "riseset":
		rise, set := visibility.RiseSet(target, obs, jd, units.FromDegrees(*horizon))
		res := &output.Result{Title: "Rise / Set"}
		res.Add("horizon_degrees", "Horizon", *horizon, "deg").
			Add("rise_jd", "Rise JD", maybeJD(rise), "").
			Add("rise_utc", "Rise UTC", maybeTime(rise), "").
			Add("set_jd", "Set JD", maybeJD(set), "").
			Add("set_utc", "Set UTC", maybeTime(set), "")
		if rise == nil && set == nil {
			// Distinguish circumpolar from never-rising for the reader.
			if visibility.TransitAltitude(target, obs).Degrees() > *horizon {
				res.Add("note", "Note", "circumpolar: always above horizon", "")
			} else {
				res.Add("note", "Note", "never rises above horizon", "")
			}
		}
		return a.print(res)

	case "report":
		rep := visibility.Assess(target, obs, jd, a.rec)
		res := &output.Result{Title: "Visibility Report"}
		res.Add("julian_date", "Julian Date", jd.JD(), "").
			Add("altitude_degrees", "Altitude", rep.Altitude.Degrees(), "deg").
			Add("azimuth_degrees", "Azimuth", rep.Azimuth.Degrees(), "deg").
			Add("transit_jd", "Transit JD", rep.Transit.JD(), "").
			Add("transit_altitude_degrees", "Transit altitude", rep.TransitAltitude.Degrees(), "deg").
			Add("rise_jd", "Rise JD", maybeJD(rep.Rise), "").
			Add("set_jd", "Set JD", maybeJD(rep.Set), "").
			Add("moon_separation_degrees", "Moon separation", rep.MoonSeparation.Degrees(), "deg").
			Add("is_night", "Night", rep.Night, "")
		if math.IsInf(rep.Airmass, 1) {
			res.Add("airmass", "Airmass", nil, "")
		} else {
			res.Add("airmass", "Airmass", rep.Airmass, "")
		}
		return a.print(res)
	}
	return usageFail(fmt.Sprintf("vis: unknown subcommand %q", sub))
}
